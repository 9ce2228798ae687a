package flows

import (
	"encoding/json"
	"errors"

	"github.com/wangjing53406/navi/internal/cheat"
	"github.com/wangjing53406/navi/internal/domain"
)

// Alfred script filters pass state between steps through environment
// variables: "snippet" holds the chosen snippet, "varname" the variable being
// filled, and every filled variable is exported under its own name.

type alfredItem struct {
	Title     string            `json:"title"`
	Subtitle  string            `json:"subtitle,omitempty"`
	Arg       string            `json:"arg,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
}

type alfredOutput struct {
	Items []alfredItem `json:"items"`
}

var errNoSnippet = errors.New("the snippet environment variable is not set")

// AlfredMain lists every cheat as an Alfred item.
func (f *Flows) AlfredMain(cfg domain.Config) error {
	cheats, err := f.deps.LoadCheats(cheat.SplitPaths(cfg.Path))
	if err != nil {
		return err
	}

	out := alfredOutput{Items: make([]alfredItem, 0, len(cheats))}
	for _, c := range cheats {
		title := c.Comment
		if title == "" {
			title = c.Snippet
		}
		out.Items = append(out.Items, alfredItem{
			Title:     title,
			Subtitle:  c.Tags + " | " + c.Snippet,
			Arg:       c.Snippet,
			Variables: map[string]string{"snippet": c.Snippet},
		})
	}

	return f.writeJSON(out)
}

// AlfredSuggestions prints candidate values for the next unfilled variable.
// In check mode it only prints that variable's name, or nothing when the
// snippet is complete.
func (f *Flows) AlfredSuggestions(cfg domain.Config, checkMode bool) error {
	snippet := f.deps.Getenv("snippet")
	if snippet == "" {
		return errNoSnippet
	}

	next := f.nextUnfilled(snippet)

	if checkMode {
		if next == "" {
			return nil
		}
		_, err := f.deps.Stdout.Write([]byte(next))
		return err
	}

	varname := f.deps.Getenv("varname")
	if varname == "" {
		varname = next
	}

	out := alfredOutput{Items: []alfredItem{}}
	if varname == "" {
		return f.writeJSON(out)
	}

	values := f.envValues(snippet)
	suggestion, ok, err := f.findSuggestion(cfg, snippet, varname)
	if err != nil {
		return err
	}

	if ok {
		candidates, err := f.candidates(suggestion, values, cfg)
		if err != nil {
			return err
		}
		for _, line := range candidates {
			value, err := f.applyOpts(line, suggestion.Opts, cfg)
			if err != nil {
				return err
			}
			out.Items = append(out.Items, alfredItem{
				Title:     value,
				Arg:       value,
				Variables: map[string]string{varname: value, "varname": varname},
			})
		}
	}

	if len(out.Items) == 0 {
		out.Items = append(out.Items, alfredItem{
			Title:     "Enter a value for <" + varname + ">",
			Variables: map[string]string{"varname": varname},
		})
	}

	return f.writeJSON(out)
}

// AlfredTransform prints the snippet with every exported variable filled in.
func (f *Flows) AlfredTransform() error {
	snippet := f.deps.Getenv("snippet")
	if snippet == "" {
		return errNoSnippet
	}
	_, err := f.deps.Stdout.Write([]byte(cheat.Fill(snippet, f.envValues(snippet))))
	return err
}

func (f *Flows) nextUnfilled(snippet string) string {
	for _, name := range cheat.Variables(snippet) {
		if f.deps.Getenv(name) == "" {
			return name
		}
	}
	return ""
}

func (f *Flows) envValues(snippet string) map[string]string {
	values := map[string]string{}
	for _, name := range cheat.Variables(snippet) {
		if v := f.deps.Getenv(name); v != "" {
			values[name] = v
		}
	}
	return values
}

func (f *Flows) findSuggestion(cfg domain.Config, snippet, varname string) (cheat.Suggestion, bool, error) {
	cheats, err := f.deps.LoadCheats(cheat.SplitPaths(cfg.Path))
	if err != nil {
		return cheat.Suggestion{}, false, err
	}
	for _, c := range cheats {
		if c.Snippet != snippet {
			continue
		}
		if s, ok := c.Suggestions[varname]; ok && s.Command != "" {
			return s, true, nil
		}
	}
	return cheat.Suggestion{}, false, nil
}

func (f *Flows) writeJSON(v any) error {
	enc := json.NewEncoder(f.deps.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
