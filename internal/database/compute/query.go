package compute

type Query struct {
	CommandId CommandId
	Args      []string
}
