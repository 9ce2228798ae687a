package cli

import "github.com/wangjing53406/navi/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--help", "-h"},
			Description: "Show help",
		},
		{
			Names:       []string{"--version", "-v"},
			Description: "Show version",
		},
		{
			Names:       []string{"--finder"},
			ValueHint:   "<fzf|skim|builtin>",
			Description: "Finder used to pick snippets",
		},
		{
			Names:       []string{"--path"},
			ValueHint:   "<dirs>",
			Description: "Colon separated cheat directories",
		},
		{
			Names:       []string{"--print"},
			Description: "Print the snippet instead of running it",
		},
		{
			Names:       []string{"--fzf-overrides"},
			ValueHint:   "<opts>",
			Description: "Extra arguments passed to fzf or skim",
		},
		{
			Names:       []string{"--no-color"},
			Description: "Disable colored output",
		},
		{
			Names:       []string{"--no-pager"},
			Description: "Do not use pager for output",
		},
		{
			Names:       []string{"--pager"},
			ValueHint:   "<cmd>",
			Description: "Use specified pager for this command",
		},
	}

	ConfigUnsetFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--all"},
			Description: "Delete all the config key=value pairs",
		},
	}

	RepoRemoveFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--keep-files"},
			Description: "Forget the repository but keep its cheatsheets on disk",
		},
	}
)
