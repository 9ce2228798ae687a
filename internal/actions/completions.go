package actions

import (
	"os"

	"github.com/wangjing53406/navi/internal/completions"
	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/usage"
)

// Completions prints the completion script for the shell named in args, or
// for $SHELL when none is given.
func Completions(root *dispatchers.DispatchNode) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		name := os.Getenv("SHELL")
		if len(args) > 0 {
			name = args[0]
		}
		if name == "" {
			return usage.MissingArgument("shell")
		}

		shell, err := completions.ParseShell(name)
		if err != nil {
			return err
		}
		return completions.Print(os.Stdout, root, shell)
	}
}
