package dispatchers

import "slices"

func newNode(name string, parent *DispatchNode, summary, usage string) *DispatchNode {
	node := &DispatchNode{
		Name:     name,
		Summary:  summary,
		Usage:    usage,
		Children: make(map[string]*DispatchNode),
	}

	if parent == nil {
		node.Path = []string{name}
	} else {
		node.Path = append(slices.Clone(parent.Path), name)
		parent.Children[name] = node
	}

	return node
}

func Root(spec RootSpec) *DispatchNode {
	node := newNode(spec.Name, nil, spec.Summary, spec.Usage)
	node.Flags = spec.Flags
	node.Action = spec.Action
	return node
}

// Group creates a node whose only job is to hold subcommands.
func Group(spec GroupSpec) *DispatchNode {
	node := newNode(spec.Name, spec.Parent, spec.Summary, spec.Usage)
	node.Category = spec.Category
	return node
}

func Command(spec CommandSpec) *DispatchNode {
	node := newNode(spec.Name, spec.Parent, spec.Summary, spec.Usage)
	node.Flags = spec.Flags
	node.Args = spec.Args
	node.Action = spec.Action
	node.Category = spec.Category
	return node
}
