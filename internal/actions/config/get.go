package config

import (
	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/usage"
)

func Get(args []string, flags *dispatchers.ParsedFlags) error {
	return get(args, flags, DefaultDeps())
}

func get(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, _ := deps.Get(key)
	_, _ = deps.Println(value)
	return nil
}
