// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Tag, Snippet, ...) rather than visual.
// When disabled, every helper returns its input unchanged.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle  lipgloss.Style
	warningStyle  lipgloss.Style
	errorStyle    lipgloss.Style
	infoStyle     lipgloss.Style
	headerStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
	tagStyle      lipgloss.Style
	commentStyle  lipgloss.Style
	snippetStyle  lipgloss.Style
	variableStyle lipgloss.Style
)

// Init enables or disables styling and loads the theme from cfg.
// NO_COLOR and NAVI_NO_COLOR disable styling regardless of enable.
// cfg may be nil.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("NAVI_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

// GetColors returns the active colors. Empty when styling is disabled.
func GetColors() ColorConfig {
	return colors
}

func initStyles(c ColorConfig) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(c.Success)
	warningStyle = makeStyle(c.Warning)
	errorStyle = makeStyle(c.Error)
	infoStyle = makeStyle(c.Info)
	mutedStyle = makeStyle(c.Muted)
	headerStyle = makeStyle(c.Header)
	tagStyle = makeStyle(c.Tag)
	commentStyle = makeStyle(c.Comment)
	snippetStyle = makeStyle(c.Snippet)
	variableStyle = makeStyle(c.Variable).Bold(true)
}

// makeStyle accepts "bold" or an ANSI color number.
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Enabled reports whether styling is on.
func Enabled() bool {
	return enabled
}

func Success(text string) string { return render(successStyle, text) }
func Warning(text string) string { return render(warningStyle, text) }
func Error(text string) string   { return render(errorStyle, text) }
func Info(text string) string    { return render(infoStyle, text) }
func Header(text string) string  { return render(headerStyle, text) }
func Muted(text string) string   { return render(mutedStyle, text) }

// Tag, Comment, Snippet and Variable color the parts of a cheat.

func Tag(text string) string      { return render(tagStyle, text) }
func Comment(text string) string  { return render(commentStyle, text) }
func Snippet(text string) string  { return render(snippetStyle, text) }
func Variable(text string) string { return render(variableStyle, text) }
