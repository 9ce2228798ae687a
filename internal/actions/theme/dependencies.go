package theme

import (
	"fmt"
	"maps"
	"slices"

	"github.com/wangjing53406/navi/internal/config"
	"github.com/wangjing53406/navi/internal/ui/style"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	Set        func([]string, string, string) ([]string, bool)
	Get        func(string) (string, bool)
	WithLock   func(func() error) error
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
	ThemeNames []string // every variant, sorted
	Themes     map[string]style.ColorConfig
	Resolve    func(string) string
}

func DefaultDeps() Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		Set:        config.Set,
		Get:        config.Get,
		WithLock:   config.WithLock,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
		ThemeNames: slices.Sorted(maps.Keys(style.Themes)),
		Themes:     style.Themes,
		Resolve:    style.ResolveThemeName,
	}
}
