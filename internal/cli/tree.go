package cli

import (
	"strings"

	"github.com/wangjing53406/navi/internal/actions"
	configactions "github.com/wangjing53406/navi/internal/actions/config"
	"github.com/wangjing53406/navi/internal/actions/repos"
	"github.com/wangjing53406/navi/internal/actions/theme"
	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/domain"
)

// Runner executes the dispatcher for cmd, which is nil when no command was
// given.
type Runner func(cmd domain.Command, flags *dispatchers.ParsedFlags) error

// Actions are the commands that manage navi itself rather than going
// through the dispatcher. Tests replace them.
type Actions struct {
	Version     dispatchers.CommandFunc
	ConfigGet   dispatchers.CommandFunc
	ConfigSet   dispatchers.CommandFunc
	ConfigUnset dispatchers.CommandFunc
	ConfigList  dispatchers.CommandFunc
	ThemeList   dispatchers.CommandFunc
	ThemeSet    dispatchers.CommandFunc
	RepoList    dispatchers.CommandFunc
	RepoRemove  dispatchers.CommandFunc
	Completions func(root *dispatchers.DispatchNode) dispatchers.CommandFunc
}

func DefaultActions() Actions {
	return Actions{
		Version:     actions.ShowVersion,
		ConfigGet:   configactions.Get,
		ConfigSet:   configactions.Set,
		ConfigUnset: configactions.Unset,
		ConfigList:  configactions.List,
		ThemeList:   theme.List,
		ThemeSet:    theme.Set,
		RepoList:    repos.List,
		RepoRemove:  repos.Remove,
		Completions: actions.Completions,
	}
}

// dispatch adapts a Command constructor to a leaf action.
func dispatch(run Runner, build func(args []string) domain.Command) dispatchers.CommandFunc {
	return func(args []string, flags *dispatchers.ParsedFlags) error {
		return run(build(args), flags)
	}
}

func BuildTree(run Runner, acts Actions) *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "navi",
		Summary: "An interactive cheatsheet tool for the command-line",
		Usage:   "navi [flags] [command] [args]",
		Flags:   RootFlags,
		Action: func(args []string, flags *dispatchers.ParsedFlags) error {
			if flags.Has("--version") || flags.Has("-v") {
				return acts.Version(args, flags)
			}
			return run(nil, flags)
		},
	})

	// cheats

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "query",
		Parent:   root,
		Summary:  "Open the finder with a prefilled query",
		Usage:    "navi query <query>",
		Args:     QueryArgs,
		Category: dispatchers.CategoryCheats,
		Action: dispatch(run, func(args []string) domain.Command {
			return domain.Query{Query: strings.Join(args, " ")}
		}),
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "best",
		Parent:   root,
		Summary:  "Run the best match for a query without asking",
		Usage:    "navi best <query> [args...]",
		Args:     BestArgs,
		Category: dispatchers.CategoryCheats,
		Action: dispatch(run, func(args []string) domain.Command {
			return domain.Best{Query: args[0], Args: args[1:]}
		}),
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "search",
		Parent:   root,
		Summary:  "Search online cheatsheet repositories",
		Usage:    "navi search <query>",
		Args:     QueryArgs,
		Category: dispatchers.CategoryCheats,
		Action: dispatch(run, func(args []string) domain.Command {
			return domain.Search{Query: strings.Join(args, " ")}
		}),
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "preview",
		Parent:   root,
		Summary:  "Render the preview of a finder line",
		Usage:    "navi preview <line>",
		Args:     PreviewArgs,
		Category: dispatchers.CategoryCheats,
		Action: dispatch(run, func(args []string) domain.Command {
			return domain.Preview{Line: strings.Join(args, " ")}
		}),
	})

	// repositories

	repo := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "repo",
		Parent:   root,
		Summary:  "Manage cheatsheet repositories",
		Usage:    "navi repo <command>",
		Category: dispatchers.CategoryRepos,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "add",
		Parent:   repo,
		Summary:  "Import cheatsheets from a git repository",
		Usage:    "navi repo add <uri>",
		Args:     RepoURIArg,
		Category: dispatchers.CategoryRepos,
		Action: dispatch(run, func(args []string) domain.Command {
			return domain.Repo{Cmd: domain.RepoAdd{URI: args[0]}}
		}),
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "browse",
		Parent:   repo,
		Summary:  "Browse and import featured repositories",
		Usage:    "navi repo browse",
		Category: dispatchers.CategoryRepos,
		Action: dispatch(run, func([]string) domain.Command {
			return domain.Repo{Cmd: domain.RepoBrowse{}}
		}),
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   repo,
		Summary:  "List imported repositories",
		Usage:    "navi repo list",
		Category: dispatchers.CategoryRepos,
		Action:   acts.RepoList,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "remove",
		Parent:   repo,
		Summary:  "Forget an imported repository and delete its cheatsheets",
		Usage:    "navi repo remove <uri> [--keep-files]",
		Flags:    RepoRemoveFlags,
		Args:     RepoURIArg,
		Category: dispatchers.CategoryRepos,
		Action:   acts.RepoRemove,
	})

	// shell

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "widget",
		Parent:   root,
		Summary:  "Print the shell widget",
		Usage:    "navi widget [shell]",
		Args:     WidgetArgs,
		Category: dispatchers.CategoryShell,
		Action: dispatch(run, func(args []string) domain.Command {
			shell := "bash"
			if len(args) > 0 {
				shell = args[0]
			}
			return domain.Widget{Shell: shell}
		}),
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "fn",
		Parent:   root,
		Summary:  "Call an internal helper function",
		Usage:    "navi fn <name> [args...]",
		Args:     FnArgs,
		Category: dispatchers.CategoryShell,
		Action: dispatch(run, func(args []string) domain.Command {
			return domain.Fn{Func: args[0], Args: args[1:]}
		}),
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "completions",
		Parent:   root,
		Summary:  "Print the shell completion script",
		Usage:    "navi completions [shell]",
		Args:     WidgetArgs,
		Category: dispatchers.CategoryShell,
		Action:   acts.Completions(root),
	})

	// alfred

	alfred := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "alfred",
		Parent:   root,
		Summary:  "Entry points for the Alfred workflow",
		Usage:    "navi alfred <command>",
		Category: dispatchers.CategoryAlfred,
	})

	alfredCommands := []struct {
		name, summary string
		cmd           domain.AlfredCommand
	}{
		{"start", "Print every snippet as Alfred items", domain.AlfredStart{}},
		{"suggestions", "Print suggestions for the current variable", domain.AlfredSuggestions{}},
		{"check", "Print the next variable that needs a value", domain.AlfredCheck{}},
		{"transform", "Print the final command", domain.AlfredTransform{}},
	}
	for _, c := range alfredCommands {
		dispatchers.Command(dispatchers.CommandSpec{
			Name:     c.name,
			Parent:   alfred,
			Summary:  c.summary,
			Usage:    "navi alfred " + c.name,
			Category: dispatchers.CategoryAlfred,
			Action: dispatch(run, func([]string) domain.Command {
				return domain.Alfred{Cmd: c.cmd}
			}),
		})
	}

	// config

	config := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "config",
		Parent:   root,
		Summary:  "Manage configuration",
		Usage:    "navi config <command>",
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   config,
		Summary:  "Print a config value",
		Usage:    "navi config get <key>",
		Args:     ConfigKeyArg,
		Category: dispatchers.CategoryConfig,
		Action:   acts.ConfigGet,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   config,
		Summary:  "Set a config value",
		Usage:    "navi config set <key> <value>",
		Args:     ConfigKeyValueArgs,
		Category: dispatchers.CategoryConfig,
		Action:   acts.ConfigSet,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unset",
		Parent:   config,
		Summary:  "Remove a config value",
		Usage:    "navi config unset <key> [--all]",
		Flags:    ConfigUnsetFlags,
		Category: dispatchers.CategoryConfig,
		Action:   acts.ConfigUnset,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   config,
		Summary:  "List every config value",
		Usage:    "navi config list",
		Category: dispatchers.CategoryConfig,
		Action:   acts.ConfigList,
	})

	themeGroup := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "theme",
		Parent:   root,
		Summary:  "Manage color themes",
		Usage:    "navi theme <command>",
		Category: dispatchers.CategoryConfig,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   themeGroup,
		Summary:  "List color themes",
		Usage:    "navi theme list",
		Category: dispatchers.CategoryConfig,
		Action:   acts.ThemeList,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "set",
		Parent:   themeGroup,
		Summary:  "Choose a color theme",
		Usage:    "navi theme set <name>",
		Args:     ThemeNameArg,
		Category: dispatchers.CategoryConfig,
		Action:   acts.ThemeSet,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "version",
		Parent:  root,
		Summary: "Show navi version",
		Usage:   "navi version",
		Action:  acts.Version,
	})

	return root
}
