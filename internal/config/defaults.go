package config

import (
	"os"

	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/paths"
)

// Defaults maps every known key to its default. Built from domain.ConfigKeys
// with the path-dependent ones resolved at call time.
var Defaults = buildDefaults()

// envOverrides lets the environment win over the config file.
var envOverrides = map[string]string{
	"cheats_path":   "NAVI_PATH",
	"finder":        "NAVI_FINDER",
	"fzf_overrides": "NAVI_FZF_OVERRIDES",
}

func buildDefaults() map[string]func() string {
	out := make(map[string]func() string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		value := key.Default
		out[key.Name] = func() string { return value }
	}
	out["cheats_path"] = paths.CheatsDir
	return out
}

// Get returns the value for a config key: environment override, then the
// config file, then the default. The bool reports whether the key is known.
func Get(key string) (string, bool) {
	all, err := GetAll()
	if err != nil {
		return "", false
	}
	value, ok := all[key]
	return value, ok
}

// GetAll returns defaults merged with the config file and the environment.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	if lines, err := ReadLines(); err == nil {
		if cfg, err := Parse(lines); err == nil {
			for key, value := range cfg {
				result[key] = value
			}
		}
	}

	for key, env := range envOverrides {
		if v := os.Getenv(env); v != "" {
			result[key] = v
		}
	}

	return result, nil
}
