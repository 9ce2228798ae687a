package theme

import (
	"fmt"
	"slices"

	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/ui/style"
	"github.com/wangjing53406/navi/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return setTheme(args, flags, DefaultDeps())
}

// setTheme accepts a full variant name or a base name from style.BaseThemeNames.
func setTheme(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("name")
	}

	name := args[0]
	_, isVariant := deps.Themes[name]
	if !isVariant && !slices.Contains(style.BaseThemeNames, name) {
		_, _ = deps.Printf("%s unknown theme: %s\n\navailable themes:\n", style.Error("error:"), name)
		for _, n := range deps.ThemeNames {
			_, _ = deps.Printf("  %s\n", n)
		}
		return fmt.Errorf("unknown theme: %s", name)
	}

	err := deps.WithLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}
		lines, _ = deps.Set(lines, "theme", name)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(name))
	return nil
}
