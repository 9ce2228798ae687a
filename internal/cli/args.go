package cli

import "github.com/wangjing53406/navi/internal/dispatchers"

var (
	QueryArgs = []dispatchers.ArgSpec{
		{
			Name:        "query",
			Description: "Words to search for; several are joined with spaces",
			Required:    true,
		},
	}

	BestArgs = []dispatchers.ArgSpec{
		{
			Name:        "query",
			Description: "Snippet to look for",
			Required:    true,
		},
		{
			Name:        "args...",
			Description: "Values for the snippet variables, in order",
		},
	}

	PreviewArgs = []dispatchers.ArgSpec{
		{
			Name:        "line",
			Description: "A finder line as produced by navi",
			Required:    true,
		},
	}

	WidgetArgs = []dispatchers.ArgSpec{
		{
			Name:        "shell",
			Description: "bash, zsh or fish",
		},
	}

	FnArgs = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Function to call, e.g. url::open",
			Required:    true,
		},
		{
			Name:        "args...",
			Description: "Function arguments",
		},
	}

	RepoURIArg = []dispatchers.ArgSpec{
		{
			Name:        "uri",
			Description: "git URI, or user/repo for GitHub",
			Required:    true,
		},
	}

	ConfigKeyArg = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
	}

	ConfigKeyValueArgs = []dispatchers.ArgSpec{
		{
			Name:        "key",
			Description: "Configuration key",
			Required:    true,
		},
		{
			Name:        "value",
			Description: "Value to assign",
			Required:    true,
		},
	}

	ThemeNameArg = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Theme name (e.g., ocean, mono-light)",
			Required:    true,
		},
	}
)
