// Package flows implements what each navi command does once it has been
// dispatched: pick a cheat, fill its variables, then print or run it.
package flows

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wangjing53406/navi/internal/cheat"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/finder"
	"github.com/wangjing53406/navi/internal/handler"
	"github.com/wangjing53406/navi/internal/log"
	"github.com/wangjing53406/navi/internal/ui/style"
)

var ErrNoMatch = errors.New("no cheat matches")

const defaultShell = "bash"

//go:embed assets/welcome.cheat
var welcomeCheat string

// Flows carries the dependencies every flow shares.
type Flows struct {
	deps Deps
}

func New(deps Deps) *Flows {
	return &Flows{deps: deps}
}

var _ handler.Flows = (*Flows)(nil)

// Core loads the cheats under cfg.Path, picks one and runs it.
// When no cheats are installed the welcome cheats are offered instead.
func (f *Flows) Core(variant domain.Variant, cfg domain.Config, interactive bool) error {
	return f.core(variant, cfg, interactive, nil)
}

func (f *Flows) Query(query string, cfg domain.Config) error {
	return f.core(domain.VariantQuery(query), cfg, true, nil)
}

// Best runs the best match for query without asking. args fill the
// snippet's variables in order.
func (f *Flows) Best(query string, args []string, cfg domain.Config) error {
	return f.core(domain.VariantFilter(query), cfg, false, args)
}

func (f *Flows) core(variant domain.Variant, cfg domain.Config, interactive bool, args []string) error {
	cheats, err := f.deps.LoadCheats(cheat.SplitPaths(cfg.Path))
	if err != nil {
		return fmt.Errorf("load cheatsheets: %w", err)
	}

	if len(cheats) == 0 {
		log.Info("flows: no cheats under %q, showing welcome cheats", cfg.Path)
		if cheats, err = welcomeCheats(); err != nil {
			return err
		}
	}

	return f.run(cheats, variant, cfg, interactive, args)
}

func welcomeCheats() ([]cheat.Cheat, error) {
	return cheat.Parse(strings.NewReader(welcomeCheat), "welcome.cheat")
}

func (f *Flows) run(cheats []cheat.Cheat, variant domain.Variant, cfg domain.Config, interactive bool, args []string) error {
	selected, err := f.selectCheat(cheats, variant, cfg, interactive)
	if err != nil {
		return err
	}

	command, err := f.resolve(selected, cfg, interactive, args)
	if err != nil {
		return err
	}

	if cfg.Print {
		_, err = fmt.Fprintln(f.deps.Stdout, command)
		return err
	}

	log.Info("flows: running %q", command)
	return f.deps.RunShell(shellOf(cfg), command)
}

func (f *Flows) selectCheat(cheats []cheat.Cheat, variant domain.Variant, cfg domain.Config, interactive bool) (cheat.Cheat, error) {
	index := make(map[string]cheat.Cheat, len(cheats))
	lines := make([]string, 0, len(cheats))
	for _, c := range cheats {
		line := c.Line()
		if _, dup := index[line]; dup {
			continue
		}
		index[line] = c
		lines = append(lines, line)
	}

	if !interactive || variant.Kind() == domain.VariantKindFilter {
		ranked := finder.Rank(variant.Query(), lines)
		if len(ranked) == 0 {
			return cheat.Cheat{}, fmt.Errorf("%w %q", ErrNoMatch, variant.Query())
		}
		return index[ranked[0]], nil
	}

	choice, err := f.finder(cfg).Choose(lines, domain.FinderOptions{
		Prompt:    "snippet",
		Query:     variant.Query(),
		Delimiter: cheat.Delimiter,
		Preview:   f.previewCommand(),
	})
	if err != nil {
		return cheat.Cheat{}, err
	}

	c, ok := index[choice]
	if !ok {
		return cheat.Cheat{}, fmt.Errorf("finder returned an unknown line %q", choice)
	}
	return c, nil
}

func (f *Flows) finder(cfg domain.Config) domain.Finder {
	return f.deps.NewFinder(cfg.Finder, cfg.FzfOverrides)
}

// previewCommand is empty when the executable cannot be located.
func (f *Flows) previewCommand() string {
	exe, err := f.deps.Executable()
	if err != nil {
		log.Warn("flows: cannot locate executable for previews: %v", err)
		return ""
	}
	return strconv.Quote(exe) + " preview {}"
}

func shellOf(cfg domain.Config) string {
	if cfg.Shell != "" {
		return cfg.Shell
	}
	return defaultShell
}

// Preview prints a finder line as a styled cheat.
func (f *Flows) Preview(line string) error {
	c, ok := cheat.ParseLine(line)
	if !ok {
		return fmt.Errorf("invalid preview line %q", line)
	}

	var b strings.Builder
	if c.Comment != "" {
		b.WriteString(style.Comment("# " + c.Comment))
		b.WriteString("\n")
	}
	if c.Tags != "" {
		b.WriteString(style.Tag("[" + c.Tags + "]"))
		b.WriteString("\n")
	}

	snippet := style.Snippet(c.Snippet)
	for _, v := range cheat.Variables(c.Snippet) {
		placeholder := "<" + v + ">"
		snippet = strings.ReplaceAll(snippet, placeholder, style.Variable(placeholder))
	}
	b.WriteString(snippet)
	b.WriteString("\n")

	_, err := fmt.Fprint(f.deps.Stdout, b.String())
	return err
}

// baseConfig reads the settings that commands without a Config still need.
func (f *Flows) baseConfig() domain.Config {
	get := func(key string) string {
		v, _ := f.deps.Config.Get(key)
		return v
	}

	choice, err := domain.ParseFinderChoice(get("finder"))
	if err != nil {
		choice = domain.FinderFzf
	}

	return domain.Config{
		Finder:       choice,
		Path:         get("cheats_path"),
		Shell:        get("shell"),
		FzfOverrides: get("fzf_overrides"),
		SearchURL:    get("search_url"),
		FeaturedURL:  get("featured_repos_url"),
	}
}
