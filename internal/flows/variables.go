package flows

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/wangjing53406/navi/internal/cheat"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/log"
)

const defaultColumnDelimiter = `\s\s+`

// resolve fills every variable of c. Values come from, in order: positional
// args, an environment variable of the same name, the variable's suggestion
// command, then a prompt. Non-interactive runs never prompt and take the
// first suggestion.
func (f *Flows) resolve(c cheat.Cheat, cfg domain.Config, interactive bool, args []string) (string, error) {
	values := map[string]string{}

	for _, name := range cheat.Variables(c.Snippet) {
		if len(args) > 0 {
			values[name], args = args[0], args[1:]
			continue
		}
		if v := f.deps.Getenv(name); v != "" {
			values[name] = v
			continue
		}

		v, err := f.suggest(c, name, values, cfg, interactive)
		if err != nil {
			return "", fmt.Errorf("variable <%s>: %w", name, err)
		}
		values[name] = v
	}

	return cheat.Fill(c.Snippet, values), nil
}

func (f *Flows) suggest(c cheat.Cheat, name string, values map[string]string, cfg domain.Config, interactive bool) (string, error) {
	s, ok := c.Suggestions[name]
	if ok && s.Command != "" {
		candidates, err := f.candidates(s, values, cfg)
		if err != nil {
			return "", err
		}

		if len(candidates) > 0 {
			if !interactive {
				return f.applyOpts(candidates[0], s.Opts, cfg)
			}
			picked, err := f.finder(cfg).Choose(candidates, domain.FinderOptions{
				Prompt:      name,
				Header:      s.Opts.Header,
				Multi:       s.Opts.Multi,
				AcceptQuery: !s.Opts.PreventExtra,
			})
			if err != nil {
				return "", err
			}
			return f.pickedValue(picked, candidates, s.Opts, cfg)
		}
		log.Debug("flows: suggestion for %s produced no values", name)
		if s.Opts.PreventExtra {
			return "", fmt.Errorf("no suggestions to choose from")
		}
	}

	if !interactive {
		return "", fmt.Errorf("no value given")
	}
	return f.deps.Prompt(name)
}

// pickedValue turns a finder result into the variable value. Picked
// suggestions go through applyOpts; a typed value is used as is. Several
// picks are joined with spaces.
func (f *Flows) pickedValue(picked string, candidates []string, opts cheat.SuggestionOpts, cfg domain.Config) (string, error) {
	parts := strings.Split(picked, "\n")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if !slices.Contains(candidates, p) {
			values = append(values, p)
			continue
		}
		v, err := f.applyOpts(p, opts, cfg)
		if err != nil {
			return "", err
		}
		values = append(values, v)
	}
	return strings.Join(values, " "), nil
}

func (f *Flows) candidates(s cheat.Suggestion, values map[string]string, cfg domain.Config) ([]string, error) {
	out, err := f.deps.ShellOutput(shellOf(cfg), cheat.Fill(s.Command, values), "")
	if err != nil {
		return nil, err
	}
	return nonEmptyLines(out), nil
}

// applyOpts narrows a chosen suggestion line to its --column and pipes it
// through --map.
func (f *Flows) applyOpts(line string, opts cheat.SuggestionOpts, cfg domain.Config) (string, error) {
	value := line

	if opts.Column > 0 {
		delim := opts.Delimiter
		if delim == "" {
			delim = defaultColumnDelimiter
		}
		re, err := regexp.Compile(delim)
		if err != nil {
			return "", fmt.Errorf("invalid --delimiter %q: %w", delim, err)
		}
		fields := re.Split(strings.TrimSpace(line), -1)
		if opts.Column > len(fields) {
			return "", fmt.Errorf("--column %d out of range for %q", opts.Column, line)
		}
		value = fields[opts.Column-1]
	}

	if opts.Map != "" {
		out, err := f.deps.ShellOutput(shellOf(cfg), opts.Map, value+"\n")
		if err != nil {
			return "", err
		}
		value = strings.TrimRight(out, "\r\n")
	}

	return value, nil
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimRight(l, "\r"); strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
