package dispatchers

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/wangjing53406/navi/internal/ui"
	"github.com/wangjing53406/navi/internal/ui/style"
)

// commandDisplayOrder defines explicit ordering within categories.
// Commands not listed appear alphabetically after listed ones.
var commandDisplayOrder = map[string]int{
	"query":   1,
	"best":    2,
	"search":  3,
	"preview": 4,

	"repo add":    1,
	"repo browse": 2,
	"repo list":   3,
	"repo remove": 4,

	"widget":      1,
	"fn":          2,
	"completions": 3,

	"alfred start":       1,
	"alfred suggestions": 2,
	"alfred check":       3,
	"alfred transform":   4,

	"config get":   1,
	"config set":   2,
	"config unset": 3,
	"config list":  4,
}

var printHelp = ui.Pager

// formatUsage styles the usage line with the command in Info color and the rest muted.
func formatUsage(usage string) string {
	cmdEnd := strings.IndexAny(usage, "[<")
	if cmdEnd < 0 {
		return style.Info(strings.TrimSpace(usage))
	}
	return style.Info(strings.TrimSpace(usage[:cmdEnd])) + " " + style.Muted(usage[cmdEnd:])
}

func collectLeafCommands(node *DispatchNode, out *[]*DispatchNode) {
	if node.Action != nil {
		*out = append(*out, node)
		return
	}
	for _, child := range node.Children {
		collectLeafCommands(child, out)
	}
}

func displayName(n *DispatchNode) string {
	return strings.Join(n.Path[1:], " ")
}

func sortForDisplay(nodes []*DispatchNode) {
	slices.SortFunc(nodes, func(a, b *DispatchNode) int {
		nameA, nameB := displayName(a), displayName(b)
		orderA, hasA := commandDisplayOrder[nameA]
		orderB, hasB := commandDisplayOrder[nameB]
		switch {
		case hasA && hasB:
			return cmp.Or(cmp.Compare(orderA, orderB), strings.Compare(nameA, nameB))
		case hasA:
			return -1
		case hasB:
			return 1
		}
		return strings.Compare(nameA, nameB)
	})
}

// HelpAction generates help output for a command node.
func HelpAction(node *DispatchNode, root *DispatchNode) CommandFunc {
	return func(args []string, flags *ParsedFlags) error {
		if node == root {
			printHelp(rootHelp(root))
		} else {
			printHelp(commandHelp(node, root))
		}
		return nil
	}
}

func rootHelp(root *DispatchNode) string {
	var out bytes.Buffer

	fmt.Fprintf(&out, "%s - %s\n\n", root.Name, root.Summary)
	fmt.Fprintf(&out, "USAGE\n   %s\n\n", formatUsage(root.Usage))

	var leaves []*DispatchNode
	for _, child := range root.Children {
		collectLeafCommands(child, &leaves)
	}

	grouped := make(map[CommandCategory][]*DispatchNode)
	for _, cmd := range leaves {
		grouped[cmd.Category] = append(grouped[cmd.Category], cmd)
	}

	for _, cat := range categoryOrder {
		cmds := grouped[cat]
		if len(cmds) == 0 {
			continue
		}
		sortForDisplay(cmds)

		out.WriteString(cat.String())
		out.WriteString("\n")
		for _, cmd := range cmds {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-20s", displayName(cmd))), cmd.Summary)
		}
		out.WriteString("\n")
	}

	writeFlags(&out, "GLOBAL FLAGS", root.Flags)

	fmt.Fprintf(&out, "See '%s help <command>' for detailed help on a specific command.\n", root.Name)
	return out.String()
}

func commandHelp(node, root *DispatchNode) string {
	var out bytes.Buffer

	out.WriteString(strings.Join(node.Path, " "))
	if node.Summary != "" {
		out.WriteString(" - ")
		out.WriteString(node.Summary)
	}
	out.WriteString("\n\n")

	if node.Usage != "" {
		fmt.Fprintf(&out, "USAGE\n   %s\n\n", formatUsage(node.Usage))
	}

	if len(node.Children) > 0 {
		out.WriteString("COMMANDS\n")
		children := make([]*DispatchNode, 0, len(node.Children))
		for _, child := range node.Children {
			children = append(children, child)
		}
		sortForDisplay(children)
		for _, child := range children {
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-12s", child.Name)), child.Summary)
		}
		out.WriteString("\n")
	}

	if len(node.Args) > 0 {
		out.WriteString("ARGS\n")
		for _, a := range node.Args {
			name := "<" + a.Name + ">"
			if !a.Required {
				name = "[" + a.Name + "]"
			}
			fmt.Fprintf(&out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), a.Description)
		}
		out.WriteString("\n")
	}

	writeFlags(&out, "FLAGS", node.Flags)

	fmt.Fprintf(&out, "See '%s help <command>' to read about a specific command.\n", root.Name)
	return out.String()
}

func writeFlags(out *bytes.Buffer, title string, flags []FlagDescriptor) {
	if len(flags) == 0 {
		return
	}
	out.WriteString(title)
	out.WriteString("\n")
	for _, f := range flags {
		name := strings.Join(f.Names, ", ")
		if f.ValueHint != "" {
			name += " " + f.ValueHint
		}
		fmt.Fprintf(out, "   %s  %s\n", style.Info(fmt.Sprintf("%-24s", name)), f.Description)
	}
	out.WriteString("\n")
}
