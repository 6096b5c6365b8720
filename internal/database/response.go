package database

const (
	EmptySet       = "(empty set)"
	AddedResult    = "Added"
	RemovedResult  = "Removed"
	ClearedResult  = "Cleared"
	TrueResult     = "True"
	FalseResult    = "False"
	ErrorResult    = "ERROR, %v"
	ListItemResult = "%d) %s\n"
	ItemResult     = "%s: %s"
	HelpItemResult = "%-14s %-16s %s\n"
)
