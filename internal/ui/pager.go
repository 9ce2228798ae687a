// Package ui holds terminal output helpers shared by commands.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/mattn/go-shellwords"
	"golang.org/x/term"
)

const defaultPager = "less -FRSX"

var (
	pagerMu       sync.RWMutex
	pagerDisabled bool
	pagerOverride string

	// stdoutIsTerminal and runPager are replaced in tests.
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	runPager         = execPager
)

// DisablePager makes Pager print directly for the rest of the process.
func DisablePager() {
	pagerMu.Lock()
	pagerDisabled = true
	pagerMu.Unlock()
}

// SetPager uses cmdline instead of $PAGER for the rest of the process.
func SetPager(cmdline string) {
	pagerMu.Lock()
	pagerOverride = cmdline
	pagerMu.Unlock()
}

// pagerCommand returns the pager command line, or "" when paging is off.
func pagerCommand() string {
	pagerMu.RLock()
	defer pagerMu.RUnlock()
	switch {
	case pagerDisabled:
		return ""
	case pagerOverride != "":
		return pagerOverride
	case os.Getenv("PAGER") != "":
		return os.Getenv("PAGER")
	default:
		return defaultPager
	}
}

// Pager writes content to stdout through the pager set with SetPager, else
// $PAGER, else "less -FRSX".
//
// Content is printed directly when the pager is disabled, stdout is not a
// terminal, or the pager is "cat". Any pager failure also falls back to a
// direct print.
func Pager(content string) {
	PagerTo(os.Stdout, content)
}

// PagerTo is Pager with an explicit fallback writer.
func PagerTo(out io.Writer, content string) {
	cmdline := pagerCommand()
	if cmdline == "" || !stdoutIsTerminal() {
		fmt.Fprint(out, content)
		return
	}

	argv, err := shellwords.Parse(cmdline)
	if err != nil || len(argv) == 0 || argv[0] == "cat" {
		fmt.Fprint(out, content)
		return
	}

	if err := runPager(argv[0], argv[1:], content); err != nil {
		fmt.Fprint(out, content)
	}
}

func execPager(name string, args []string, content string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
