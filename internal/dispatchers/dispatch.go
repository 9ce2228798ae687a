package dispatchers

import (
	"slices"
	"strings"

	"github.com/wangjing53406/navi/internal/usage"
)

const defaultSuggestionsCount = 3

// Dispatch walks tokens down the tree from root and returns what to run.
//
// "help" as the first token (or right after a group) and --help anywhere
// resolve to the help of the addressed node. The root without tokens runs
// the root action. A group without a subcommand shows its help.
func Dispatch(root *DispatchNode, tokens []string, flags *ParsedFlags) (Resolution, error) {
	current := root
	consumed := 0

	for _, tok := range tokens {
		if tok == "help" && (current == root || current.Action == nil) {
			return helpFor(root, current, tokens[consumed+1:], flags)
		}

		child, ok := current.Children[tok]
		if !ok {
			if len(current.Children) > 0 && (current == root || current.Action == nil) {
				suggestions := FindSimilarCommands(tok, current, defaultSuggestionsCount)
				name := strings.Join(slices.Concat(current.Path[1:], []string{tok}), " ")
				return Resolution{}, usage.UnknownCommand(name, suggestions...)
			}
			break
		}
		current = child
		consumed++
	}

	args := tokens[consumed:]

	if hasHelpFlag(flags) {
		return Resolution{Node: current, Flags: flags, Execute: HelpAction(current, root)}, nil
	}

	if err := validateFlags(flags, validFlagsForNode(current, root)); err != nil {
		return Resolution{}, err
	}

	if current.Action == nil {
		return Resolution{Node: current, Flags: flags, Execute: HelpAction(current, root)}, nil
	}

	if err := validateArgs(current.Args, args); err != nil {
		return Resolution{}, err
	}

	return Resolution{Node: current, Args: args, Flags: flags, Execute: current.Action}, nil
}

// helpFor resolves "help [path...]" relative to from.
func helpFor(root, from *DispatchNode, path []string, flags *ParsedFlags) (Resolution, error) {
	target := from
	for _, p := range path {
		child, ok := target.Children[p]
		if !ok {
			suggestions := FindSimilarCommands(p, target, defaultSuggestionsCount)
			name := strings.Join(slices.Concat(target.Path[1:], []string{p}), " ")
			return Resolution{}, usage.UnknownCommand(name, suggestions...)
		}
		target = child
	}
	return Resolution{Node: target, Flags: flags, Execute: HelpAction(target, root)}, nil
}

func hasHelpFlag(flags *ParsedFlags) bool {
	return flags.Has("--help") || flags.Has("-h")
}

func validFlagsForNode(node, root *DispatchNode) map[string]bool {
	valid := make(map[string]bool)
	for _, f := range slices.Concat(root.Flags, node.Flags) {
		for _, name := range f.Names {
			valid[name] = true
		}
	}
	return valid
}

func validateFlags(flags *ParsedFlags, valid map[string]bool) error {
	for _, f := range flags.Raw() {
		name, _, _ := strings.Cut(f, "=")
		if !valid[name] {
			return usage.InvalidFlag(f)
		}
	}
	return nil
}

func validateArgs(spec []ArgSpec, args []string) error {
	for i, a := range spec {
		if a.Required && i >= len(args) {
			return usage.MissingArgument(a.Name)
		}
	}
	return nil
}
