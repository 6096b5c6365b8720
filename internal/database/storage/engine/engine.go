package engine

//go:generate mockgen -source engine.go -destination engine_mock.go -package engine

// Item is a single key/member membership.
type Item struct {
	Key    string
	Member string
}

// Engine maps keys to sets of members. A key is present only while its set is non-empty.
// Listing methods return fresh slices in unspecified order.
type Engine interface {
	Keys() []string
	Members(key string) ([]string, error)
	Add(key, member string) error
	Remove(key, member string) error
	RemoveAll(key string) error
	Clear()
	KeyExists(key string) bool
	MemberExists(key, member string) (bool, error)
	AllMembers() []string
	Items() []Item
	Union(keyA, keyB string) ([]string, error)
	Except(keyA, keyB string) ([]string, error)
	Count() int
}
