package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryCheats                        // finding and running snippets
	CategoryRepos                         // importing cheatsheet repositories
	CategoryShell                         // shell widgets and helper functions
	CategoryAlfred                        // the Alfred workflow
	CategoryConfig
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryCheats:
		return "find and run snippets"
	case CategoryRepos:
		return "manage cheatsheet repositories"
	case CategoryShell:
		return "shell integration"
	case CategoryAlfred:
		return "alfred workflow"
	case CategoryConfig:
		return "configure navi"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryCheats,
	CategoryRepos,
	CategoryShell,
	CategoryAlfred,
	CategoryConfig,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
