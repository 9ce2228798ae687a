package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	current, _ := deps.Get("theme")
	if current == "" {
		current = "default"
	}
	current = deps.Resolve(current)

	_, _ = deps.Println("Available themes (* = current)")
	_, _ = deps.Println()

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == current {
			marker = style.Success("* ")
		}
		_, _ = deps.Printf("%s%-14s  %s\n", marker, name, renderPreview(deps.Themes[name]))
	}

	_, _ = deps.Println()
	_, _ = deps.Println("Use 'navi theme set <name>' to change. Base names pick the variant matching your terminal.")
	return nil
}

// renderPreview shows what a finder line looks like under cfg.
func renderPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("[git] ", cfg.Tag) +
		colorize("Commit all changes ", cfg.Comment) +
		colorize("git commit -am ", cfg.Snippet) +
		colorize("<message>", cfg.Variable) +
		"   " +
		colorize("ok ", cfg.Success) +
		colorize("error ", cfg.Error) +
		colorize("muted", cfg.Muted)
}
