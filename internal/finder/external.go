package finder

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/log"
)

// Exit codes shared by fzf and skim.
const (
	exitNoMatch     = 1
	exitInterrupted = 130
)

// External runs an fzf-compatible binary.
type External struct {
	Binary    string
	Overrides string

	command func(name string, args ...string) *exec.Cmd
}

func NewExternal(binary, overrides string) *External {
	return &External{Binary: binary, Overrides: overrides, command: exec.Command}
}

// Args builds the command line for one Choose call.
func (e *External) Args(opts domain.FinderOptions) ([]string, error) {
	args := []string{"--ansi", "--layout=reverse", "--height=100%"}

	if opts.Prompt != "" {
		args = append(args, "--prompt", opts.Prompt+"> ")
	}
	if opts.Query != "" {
		args = append(args, "--query", opts.Query)
	}
	if opts.Header != "" {
		args = append(args, "--header", opts.Header)
	}
	if opts.Preview != "" {
		args = append(args, "--preview", opts.Preview, "--preview-window", "up:2:nohidden")
	}
	if opts.Delimiter != "" {
		args = append(args, "--delimiter", opts.Delimiter)
	}
	if opts.WithNth != "" {
		args = append(args, "--with-nth", opts.WithNth)
	}
	if opts.Multi {
		args = append(args, "--multi")
	}
	if opts.AcceptQuery {
		args = append(args, "--print-query")
	}

	if strings.TrimSpace(e.Overrides) != "" {
		extra, err := shellwords.Parse(e.Overrides)
		if err != nil {
			return nil, fmt.Errorf("parse finder overrides %q: %w", e.Overrides, err)
		}
		args = append(args, extra...)
	}

	return args, nil
}

// Choose pipes lines into the finder and returns the selected line.
func (e *External) Choose(lines []string, opts domain.FinderOptions) (string, error) {
	args, err := e.Args(opts)
	if err != nil {
		return "", err
	}

	log.Debug("finder: running %s %s", e.Binary, strings.Join(args, " "))

	cmd := e.command(e.Binary, args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n") + "\n")
	cmd.Stderr = os.Stderr
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case exitNoMatch:
				// --print-query still prints what was typed
				if !opts.AcceptQuery {
					return "", ErrCancelled
				}
				return parseSelection(stdout.String(), opts)
			case exitInterrupted:
				return "", ErrCancelled
			}
		}
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%s is not installed; use --finder=builtin or install it: %w", e.Binary, err)
		}
		return "", fmt.Errorf("%s: %w", e.Binary, err)
	}

	return parseSelection(stdout.String(), opts)
}

// parseSelection reads finder output: the query line first when
// AcceptQuery is set, then one picked line each.
func parseSelection(out string, opts domain.FinderOptions) (string, error) {
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\n")

	var query string
	if opts.AcceptQuery {
		query, lines = strings.TrimRight(lines[0], "\r"), lines[1:]
	}

	var picked []string
	for _, l := range lines {
		if l = strings.TrimRight(l, "\r"); l != "" {
			picked = append(picked, l)
		}
	}

	switch {
	case len(picked) == 0 && strings.TrimSpace(query) != "":
		return query, nil
	case len(picked) == 0:
		return "", ErrCancelled
	case opts.Multi:
		return strings.Join(picked, "\n"), nil
	default:
		return picked[0], nil
	}
}

var _ domain.Finder = (*External)(nil)
