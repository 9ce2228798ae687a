package dispatchers

// CommandFunc is the action bound to a leaf of the command tree.
type CommandFunc func(args []string, flags *ParsedFlags) error

// Resolution is what Dispatch found for a command line.
type Resolution struct {
	Node    *DispatchNode
	Args    []string
	Flags   *ParsedFlags
	Execute CommandFunc
}

type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
}

type ArgSpec struct {
	Name        string
	Description string
	Required    bool
}

type DispatchNode struct {
	Name     string
	Path     []string
	Summary  string
	Usage    string
	Flags    []FlagDescriptor
	Args     []ArgSpec
	Children map[string]*DispatchNode
	Action   CommandFunc
	Category CommandCategory
}

type RootSpec struct {
	Name    string
	Summary string
	Usage   string
	Flags   []FlagDescriptor
	// Action runs when no command is given.
	Action CommandFunc
}

type GroupSpec struct {
	Name     string
	Parent   *DispatchNode
	Summary  string
	Usage    string
	Category CommandCategory
}

type CommandSpec struct {
	Name     string
	Parent   *DispatchNode
	Summary  string
	Usage    string
	Flags    []FlagDescriptor
	Args     []ArgSpec
	Action   CommandFunc
	Category CommandCategory
}
