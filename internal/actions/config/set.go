package config

import (
	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return set(args, flags, DefaultDeps())
}

func set(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key, value := args[0], args[1]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	if key == "finder" {
		finder, err := domain.ParseFinderChoice(value)
		if err != nil {
			return usage.InvalidFinder(value)
		}
		value = string(finder)
	}

	var updated bool
	err := deps.WithLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}
		lines, updated = deps.Set(lines, key, value)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}
	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}
