package cheat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Parse reads a cheat file. file is recorded on every returned cheat.
func Parse(r io.Reader, file string) ([]Cheat, error) {
	var (
		cheats      []Cheat
		tags        string
		comment     string
		snippet     []string
		suggestions = map[string]Suggestion{}
	)

	flush := func() {
		if len(snippet) > 0 {
			cheats = append(cheats, Cheat{
				Tags:        tags,
				Comment:     comment,
				Snippet:     strings.Join(snippet, "\n"),
				File:        file,
				Suggestions: suggestions,
			})
		}
		comment = ""
		snippet = nil
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			if len(snippet) > 0 && !strings.HasSuffix(snippet[len(snippet)-1], "\\") {
				flush()
			}
		case strings.HasPrefix(trimmed, "%"):
			flush()
			tags = strings.TrimSpace(trimmed[1:])
		case strings.HasPrefix(trimmed, "#"):
			flush()
			comment = strings.TrimSpace(trimmed[1:])
		case strings.HasPrefix(trimmed, ";"):
		case strings.HasPrefix(trimmed, "$"):
			flush()
			name, s, err := parseSuggestion(trimmed[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", file, lineNo, err)
			}
			suggestions[name] = s
		default:
			snippet = append(snippet, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	flush()

	return cheats, nil
}

// parseSuggestion parses " name: command --- --column 2".
func parseSuggestion(s string) (string, Suggestion, error) {
	name, rest, ok := strings.Cut(s, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", Suggestion{}, fmt.Errorf("malformed variable line %q", "$"+s)
	}

	command, opts, _ := strings.Cut(rest, "---")
	parsed, err := parseSuggestionOpts(opts)
	if err != nil {
		return "", Suggestion{}, fmt.Errorf("variable %s: %w", name, err)
	}

	return name, Suggestion{Command: strings.TrimSpace(command), Opts: parsed}, nil
}

func parseSuggestionOpts(s string) (SuggestionOpts, error) {
	var opts SuggestionOpts

	args, err := shellwords.Parse(s)
	if err != nil {
		return opts, err
	}

	for i := 0; i < len(args); i++ {
		next := func() (string, error) {
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s needs a value", args[i])
			}
			i++
			return args[i], nil
		}

		switch args[i] {
		case "--multi":
			opts.Multi = true
		case "--prevent-extra":
			opts.PreventExtra = true
		case "--column":
			v, err := next()
			if err != nil {
				return opts, err
			}
			if opts.Column, err = strconv.Atoi(v); err != nil || opts.Column < 1 {
				return opts, fmt.Errorf("invalid --column %q", v)
			}
		case "--delimiter":
			if opts.Delimiter, err = next(); err != nil {
				return opts, err
			}
		case "--map":
			if opts.Map, err = next(); err != nil {
				return opts, err
			}
		case "--header", "--header-lines":
			if opts.Header, err = next(); err != nil {
				return opts, err
			}
		default:
			// finder-specific options are passed through by newer cheats; ignore them
		}
	}

	return opts, nil
}
