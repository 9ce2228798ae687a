// Package completions generates shell completion scripts from the command tree.
package completions

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/wangjing53406/navi/internal/dispatchers"
)

type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ParseShell accepts a shell name or a path such as /bin/zsh.
func ParseShell(s string) (Shell, error) {
	name := s[strings.LastIndex(s, "/")+1:]
	switch Shell(name) {
	case ShellBash, ShellZsh, ShellFish:
		return Shell(name), nil
	}
	return "", fmt.Errorf("unsupported shell: %s (expected bash, zsh or fish)", s)
}

// CommandInfo represents a command extracted from the dispatch tree
type CommandInfo struct {
	Name        string
	Path        []string // without the binary name, empty for the root
	Summary     string
	Subcommands []string // sorted
	Flags       []FlagInfo
}

// FlagInfo represents a flag for a command
type FlagInfo struct {
	Names       []string
	Description string
	HasValue    bool
}

// ExtractCommands walks the dispatch tree depth first, children in name order.
func ExtractCommands(root *dispatchers.DispatchNode) []CommandInfo {
	var commands []CommandInfo
	extractNode(root, &commands)
	return commands
}

func extractNode(node *dispatchers.DispatchNode, commands *[]CommandInfo) {
	if node == nil {
		return
	}

	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	slices.Sort(names)

	flags := make([]FlagInfo, 0, len(node.Flags))
	for _, f := range node.Flags {
		flags = append(flags, FlagInfo{
			Names:       f.Names,
			Description: f.Description,
			HasValue:    f.ValueHint != "",
		})
	}

	*commands = append(*commands, CommandInfo{
		Name:        node.Name,
		Path:        node.Path[1:],
		Summary:     node.Summary,
		Subcommands: names,
		Flags:       flags,
	})

	for _, name := range names {
		extractNode(node.Children[name], commands)
	}
}

// FindCommand finds a command by its path
func FindCommand(commands []CommandInfo, path []string) *CommandInfo {
	for i := range commands {
		if slices.Equal(commands[i].Path, path) {
			return &commands[i]
		}
	}
	return nil
}

// Print writes the completion script for shell to w.
func Print(w io.Writer, root *dispatchers.DispatchNode, shell Shell) error {
	commands := ExtractCommands(root)

	var script string
	switch shell {
	case ShellBash:
		script = GenerateBash(root.Name, commands)
	case ShellZsh:
		script = GenerateZsh(root.Name, commands)
	case ShellFish:
		script = GenerateFish(root.Name, commands)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := io.WriteString(w, script)
	return err
}
