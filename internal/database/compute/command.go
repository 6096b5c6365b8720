package compute

import "sort"

type CommandId int8

type CommandSettings struct {
	id          CommandId
	argCount    int
	usage       string
	description string
}

const (
	KeysCommandToken         = "keys"
	MembersCommandToken      = "members"
	AddCommandToken          = "add"
	RemoveCommandToken       = "remove"
	RemoveAllCommandToken    = "removeall"
	ClearCommandToken        = "clear"
	KeyExistsCommandToken    = "keyexists"
	MemberExistsCommandToken = "memberexists"
	AllMembersCommandToken   = "allmembers"
	ItemsCommandToken        = "items"
	UnionCommandToken        = "union"
	ExceptCommandToken       = "except"
	HelpCommandToken         = "help"

	KeysCommandId         = CommandId(1)
	MembersCommandId      = CommandId(2)
	AddCommandId          = CommandId(3)
	RemoveCommandId       = CommandId(4)
	RemoveAllCommandId    = CommandId(5)
	ClearCommandId        = CommandId(6)
	KeyExistsCommandId    = CommandId(7)
	MemberExistsCommandId = CommandId(8)
	AllMembersCommandId   = CommandId(9)
	ItemsCommandId        = CommandId(10)
	UnionCommandId        = CommandId(11)
	ExceptCommandId       = CommandId(12)
	HelpCommandId         = CommandId(13)
)

var commandSettings = map[string]CommandSettings{
	KeysCommandToken: {
		id: KeysCommandId, argCount: 0,
		description: "Returns all the keys in the dictionary. Order is not guaranteed.",
	},
	MembersCommandToken: {
		id: MembersCommandId, argCount: 1, usage: "<key>",
		description: "Returns the collection of strings for the given key. Returns an error if the key does not exist.",
	},
	AddCommandToken: {
		id: AddCommandId, argCount: 2, usage: "<key> <member>",
		description: "Adds a member to a collection for a given key. Displays an error if the member already exists for the key.",
	},
	RemoveCommandToken: {
		id: RemoveCommandId, argCount: 2, usage: "<key> <member>",
		description: "Removes a member from a key. The key is removed with its last member. Displays an error if the key or member does not exist.",
	},
	RemoveAllCommandToken: {
		id: RemoveAllCommandId, argCount: 1, usage: "<key>",
		description: "Removes all members for a key and the key itself. Returns an error if the key does not exist.",
	},
	ClearCommandToken: {
		id: ClearCommandId, argCount: 0,
		description: "Removes all keys and all members from the dictionary.",
	},
	KeyExistsCommandToken: {
		id: KeyExistsCommandId, argCount: 1, usage: "<key>",
		description: "Returns whether a key exists or not.",
	},
	MemberExistsCommandToken: {
		id: MemberExistsCommandId, argCount: 2, usage: "<key> <member>",
		description: "Returns whether a member exists within a key. Returns false if the key does not exist.",
	},
	AllMembersCommandToken: {
		id: AllMembersCommandId, argCount: 0,
		description: "Returns all the members in the dictionary.",
	},
	ItemsCommandToken: {
		id: ItemsCommandId, argCount: 0,
		description: "Returns all keys in the dictionary and all of their members.",
	},
	UnionCommandToken: {
		id: UnionCommandId, argCount: 2, usage: "<keyA> <keyB>",
		description: "Returns members that exist for either key, without duplicates.",
	},
	ExceptCommandToken: {
		id: ExceptCommandId, argCount: 2, usage: "<keyA> <keyB>",
		description: "Returns members that exist for exactly one of the keys.",
	},
	HelpCommandToken: {
		id: HelpCommandId, argCount: 0,
		description: "Shows available commands.",
	},
}

// CommandInfo describes a command for help output.
type CommandInfo struct {
	Name        string
	Usage       string
	Description string
}

// Commands lists the command table sorted by name.
func Commands() []CommandInfo {
	infos := make([]CommandInfo, 0, len(commandSettings))
	for name, settings := range commandSettings {
		infos = append(infos, CommandInfo{
			Name:        name,
			Usage:       settings.usage,
			Description: settings.description,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}
