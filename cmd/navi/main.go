package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"

	"github.com/wangjing53406/navi/internal/app"
	"github.com/wangjing53406/navi/internal/cli"
	"github.com/wangjing53406/navi/internal/config"
	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/failure"
	"github.com/wangjing53406/navi/internal/finder"
	"github.com/wangjing53406/navi/internal/flows"
	"github.com/wangjing53406/navi/internal/handler"
	"github.com/wangjing53406/navi/internal/log"
	"github.com/wangjing53406/navi/internal/ui"
	"github.com/wangjing53406/navi/internal/usage"
)

// exitCancelled matches what shells report for Ctrl-C.
const exitCancelled = 130

// valueFlags may take their value as the next argument ("--finder skim").
var valueFlags = []string{"--finder", "--path", "--fzf-overrides", "--pager"}

// Replaced in tests.
var (
	disablePager = ui.DisablePager
	setPager     = ui.SetPager
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	rawFlags, commands := splitArgs(args)
	flags := dispatchers.NewParsedFlags(rawFlags)

	opts := app.DefaultOptions()
	opts.StyleEnabled = term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	cleanup := app.Init(opts)
	defer cleanup()

	if flags.Has("--no-pager") {
		disablePager()
	}
	if pager := flags.String("--pager", ""); pager != "" {
		setPager(pager)
	}

	root := cli.BuildTree(runDispatcher, cli.DefaultActions())

	res, err := dispatchers.Dispatch(root, commands, flags)
	if err == nil {
		err = res.Execute(res.Args, res.Flags)
	}
	if err != nil {
		log.Error("%v", err)
		printError(stderr, err)
	}
	return exitCode(err)
}

// runDispatcher builds the Config for cmd and hands it to the handler.
func runDispatcher(cmd domain.Command, flags *dispatchers.ParsedFlags) error {
	cfg, err := cli.BuildConfig(cmd, flags, config.NewProvider())
	if err != nil {
		return err
	}

	name := "core"
	if cmd != nil {
		name = cmd.String()
	}
	log.Debug("running %s with finder %s", name, cfg.Finder)

	return handler.Handle(cfg, flows.New(flows.DefaultDeps()))
}

// splitArgs separates flags from command tokens. Everything after a literal
// "--" is a command token. A value flag given as "--path dir" is rewritten to
// "--path=dir".
func splitArgs(args []string) (flags, commands []string) {
	flags, commands = []string{}, []string{}

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return flags, append(commands, args[i+1:]...)
		case len(a) > 1 && a[0] == '-':
			if slices.Contains(valueFlags, a) && i+1 < len(args) {
				flags = append(flags, a+"="+args[i+1])
				i++
				continue
			}
			flags = append(flags, a)
		default:
			commands = append(commands, a)
		}
	}

	return flags, commands
}

// printError writes err the way the user sees it: usage errors as a single
// line, everything else as the context chain with the root cause last.
// Cancelled selections print nothing.
func printError(w io.Writer, err error) {
	if errors.Is(err, finder.ErrCancelled) {
		return
	}

	var uerr *usage.Error
	if errors.As(err, &uerr) {
		_, _ = fmt.Fprintln(w, uerr.Error())
		return
	}

	msgs := failure.Messages(err)
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", msgs[0])
	if len(msgs) > 1 {
		b.WriteString("\nCaused by:\n")
		for i, m := range msgs[1:] {
			fmt.Fprintf(&b, "    %d: %s\n", i, m)
		}
	}
	_, _ = io.WriteString(w, b.String())
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, finder.ErrCancelled) {
		return exitCancelled
	}
	var uerr *usage.Error
	if errors.As(err, &uerr) {
		return uerr.GetExitCode()
	}
	return 1
}
