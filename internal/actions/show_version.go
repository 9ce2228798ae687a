package actions

import "github.com/wangjing53406/navi/internal/dispatchers"

func ShowVersion(args []string, flags *dispatchers.ParsedFlags) error {
	return showVersion(args, flags, defaultDeps())
}

func showVersion(_ []string, _ *dispatchers.ParsedFlags, deps actionDependencies) error {
	_, _ = deps.Printf("navi %v\n", deps.Version())
	return nil
}
