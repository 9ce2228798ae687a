package flows

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/wangjing53406/navi/internal/domain"
)

type function func(f *Flows, args []string) error

var functions = map[string]function{
	"url::open":            urlOpen,
	"welcome":              welcome,
	"widget::last_command": lastCommand,
	"map::expand":          mapExpand,
}

// FunctionNames lists the names Func accepts, sorted.
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Func runs the named helper function.
func (f *Flows) Func(name string, args []string) error {
	fn, ok := functions[name]
	if !ok {
		return fmt.Errorf("unknown function %q (available: %s)", name, strings.Join(FunctionNames(), ", "))
	}
	return fn(f, args)
}

func urlOpen(f *Flows, args []string) error {
	if len(args) == 0 {
		return errors.New("missing URL")
	}
	return f.deps.OpenURL(strings.Join(args, " "))
}

func welcome(f *Flows, _ []string) error {
	cheats, err := welcomeCheats()
	if err != nil {
		return err
	}
	cfg := f.baseConfig()
	return f.run(cheats, domain.VariantCore(), cfg, true, nil)
}

var commandSeparator = regexp.MustCompile(`\s*(?:&&|\|\||\||;)\s*`)

// lastCommand prints the part of a shell line after its last separator.
func lastCommand(f *Flows, args []string) error {
	line := strings.Join(args, " ")
	parts := commandSeparator.Split(line, -1)
	_, err := fmt.Fprintln(f.deps.Stdout, strings.TrimSpace(parts[len(parts)-1]))
	return err
}

// mapExpand splits each stdin line into shell words and prints one per line.
func mapExpand(f *Flows, _ []string) error {
	scanner := bufio.NewScanner(f.deps.Stdin)
	for scanner.Scan() {
		words, err := shellwords.Parse(scanner.Text())
		if err != nil {
			return err
		}
		for _, w := range words {
			if _, err := fmt.Fprintln(f.deps.Stdout, w); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
