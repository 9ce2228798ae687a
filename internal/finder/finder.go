// Package finder lets the user pick one line out of many, either through an
// external fuzzy finder (fzf, skim) or a built-in terminal picker.
package finder

import (
	"errors"

	"github.com/sahilm/fuzzy"

	"github.com/wangjing53406/navi/internal/domain"
)

// ErrCancelled is returned when the user aborts the selection or nothing matched.
var ErrCancelled = errors.New("selection cancelled")

// New returns the finder for choice. overrides are extra command-line
// options for external finders, e.g. "--height 40% --reverse".
func New(choice domain.FinderChoice, overrides string) domain.Finder {
	switch choice {
	case domain.FinderSkim:
		return NewExternal("sk", overrides)
	case domain.FinderBuiltin:
		return NewBuiltin()
	default:
		return NewExternal("fzf", overrides)
	}
}

// Rank orders lines by how well they fuzzy-match query, best first.
// Lines that do not match are dropped. An empty query keeps the input order.
func Rank(query string, lines []string) []string {
	if query == "" {
		return lines
	}

	matches := fuzzy.Find(query, lines)
	ranked := make([]string, len(matches))
	for i, m := range matches {
		ranked[i] = m.Str
	}
	return ranked
}
