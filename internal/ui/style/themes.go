package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds every configurable color.
// Values are ANSI color numbers (0-255) or "bold".
type ColorConfig struct {
	Success  string
	Warning  string
	Error    string
	Info     string
	Muted    string
	Header   string
	Tag      string // cheat tags in finder lines and previews
	Comment  string // cheat descriptions
	Snippet  string // the command itself
	Variable string // <placeholders> inside a snippet
}

// BaseThemeNames lists theme bases; the dark/light variant is auto-detected.
var BaseThemeNames = []string{"default", "mono", "ocean"}

// Themes contains the built-in color themes.
// Dark variants use bright colors, light variants use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success:  "10",
		Warning:  "11",
		Error:    "9",
		Info:     "14",
		Muted:    "245",
		Header:   "bold",
		Tag:      "14",
		Comment:  "12",
		Snippet:  "15",
		Variable: "13",
	},
	"default-light": {
		Success:  "28",
		Warning:  "130",
		Error:    "124",
		Info:     "27",
		Muted:    "242",
		Header:   "bold",
		Tag:      "30",
		Comment:  "25",
		Snippet:  "0",
		Variable: "90",
	},
	"mono-dark": {
		Success:  "252",
		Warning:  "bold",
		Error:    "bold",
		Info:     "250",
		Muted:    "242",
		Header:   "bold",
		Tag:      "248",
		Comment:  "244",
		Snippet:  "255",
		Variable: "bold",
	},
	"mono-light": {
		Success:  "236",
		Warning:  "bold",
		Error:    "bold",
		Info:     "238",
		Muted:    "246",
		Header:   "bold",
		Tag:      "240",
		Comment:  "244",
		Snippet:  "232",
		Variable: "bold",
	},
	"ocean-dark": {
		Success:  "43",
		Warning:  "221",
		Error:    "203",
		Info:     "75",
		Muted:    "243",
		Header:   "bold",
		Tag:      "37",
		Comment:  "68",
		Snippet:  "117",
		Variable: "80",
	},
	"ocean-light": {
		Success:  "29",
		Warning:  "136",
		Error:    "160",
		Info:     "25",
		Muted:    "244",
		Header:   "bold",
		Tag:      "24",
		Comment:  "61",
		Snippet:  "17",
		Variable: "31",
	},
}

// colorEnvKeys maps NAVI_COLOR_* environment variables to ColorConfig fields.
var colorEnvKeys = map[string]func(*ColorConfig) *string{
	"success":  func(c *ColorConfig) *string { return &c.Success },
	"warning":  func(c *ColorConfig) *string { return &c.Warning },
	"error":    func(c *ColorConfig) *string { return &c.Error },
	"info":     func(c *ColorConfig) *string { return &c.Info },
	"muted":    func(c *ColorConfig) *string { return &c.Muted },
	"header":   func(c *ColorConfig) *string { return &c.Header },
	"tag":      func(c *ColorConfig) *string { return &c.Tag },
	"comment":  func(c *ColorConfig) *string { return &c.Comment },
	"snippet":  func(c *ColorConfig) *string { return &c.Snippet },
	"variable": func(c *ColorConfig) *string { return &c.Variable },
}

// IsDarkBackground reports whether the terminal background is dark.
// Returns true if detection fails.
var IsDarkBackground = func() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name based on the
// terminal background. Names that already carry a suffix are returned as-is.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the "theme" config key.
// NAVI_THEME overrides the theme and NAVI_COLOR_<FIELD> overrides single colors.
// Unknown themes fall back to default.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := "default"
	if v := os.Getenv("NAVI_THEME"); v != "" {
		name = v
	} else if v := cfg["theme"]; v != "" {
		name = v
	}

	theme, ok := Themes[ResolveThemeName(name)]
	if !ok {
		theme = Themes[ResolveThemeName("default")]
	}

	for key, field := range colorEnvKeys {
		if v := os.Getenv("NAVI_COLOR_" + strings.ToUpper(key)); v != "" {
			*field(&theme) = v
		}
	}

	return theme
}
