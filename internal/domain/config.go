package domain

import (
	"fmt"
	"strings"
)

// FinderChoice names the program used to pick a line.
type FinderChoice string

const (
	FinderFzf     FinderChoice = "fzf"
	FinderSkim    FinderChoice = "skim"
	FinderBuiltin FinderChoice = "builtin"
)

// ParseFinderChoice validates a finder name (case insensitive).
func ParseFinderChoice(s string) (FinderChoice, error) {
	switch FinderChoice(strings.ToLower(strings.TrimSpace(s))) {
	case FinderFzf:
		return FinderFzf, nil
	case FinderSkim, "sk":
		return FinderSkim, nil
	case FinderBuiltin:
		return FinderBuiltin, nil
	default:
		return "", fmt.Errorf("unknown finder %q (expected fzf, skim or builtin)", s)
	}
}

// Config is everything one invocation needs. It is built once by the runner
// and passed by value; nothing downstream mutates it.
type Config struct {
	// Cmd is nil when no subcommand was given.
	Cmd Command

	Finder       FinderChoice
	Path         string // colon separated cheat directories
	Print        bool   // print the snippet instead of running it
	Shell        string
	FzfOverrides string
	SearchURL    string
	FeaturedURL  string
}

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string
}

// ConfigKeys is the single source of truth for user configuration.
// Order determines display order in `navi config list`.
var ConfigKeys = []ConfigKey{
	// Finder
	{
		Name:        "finder",
		Default:     string(FinderFzf),
		Description: "Finder used to pick snippets: fzf, skim, builtin",
		Section:     "Finder",
	},
	{
		Name:        "fzf_overrides",
		Default:     "",
		Description: "Extra arguments passed to fzf or skim",
		Section:     "Finder",
	},
	// Cheats
	{
		Name:        "cheats_path",
		Default:     "", // set dynamically to paths.CheatsDir()
		Description: "Colon separated directories holding .cheat files",
		Section:     "Cheats",
	},
	{
		Name:        "featured_repos_url",
		Default:     "https://raw.githubusercontent.com/denisidoro/cheats/master/featured_repos.txt",
		Description: "List of featured cheatsheet repositories",
		Section:     "Cheats",
	},
	{
		Name:        "search_url",
		Default:     "https://cheat.sh/~%s",
		Description: "Online cheatsheet endpoint (%s is replaced by the query)",
		Section:     "Cheats",
	},
	// Shell
	{
		Name:        "shell",
		Default:     "bash",
		Description: "Shell used to run snippets",
		Section:     "Shell",
	},
	// Display
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, mono, ocean",
		Section:     "Display",
	},
	{
		Name:        "display_date",
		Default:     "Jan 02",
		Description: "Date format: dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd or a Go layout",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format: 12h or 24h",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "false",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
}

var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Finder", "Cheats", "Shell", "Display", "Logging"}
}
