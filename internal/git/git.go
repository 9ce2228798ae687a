// Package git shells out to the git binary to fetch cheatsheet repositories.
package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/wangjing53406/navi/internal/log"
)

var ErrGitNotFound = errors.New("git is not installed")

// IsAvailable reports whether a working git binary is on PATH.
func IsAvailable() bool {
	path, err := exec.LookPath("git")
	if err != nil {
		return false
	}
	return exec.Command(path, "--version").Run() == nil
}

// Clone shallow-clones uri into dest. dest must not exist yet.
func Clone(uri, dest string) error {
	if strings.HasPrefix(uri, "-") {
		return fmt.Errorf("invalid repository uri %q", uri)
	}
	if _, err := runGit("clone", "--quiet", "--depth", "1", "--", uri, dest); err != nil {
		return fmt.Errorf("git clone %s: %w", uri, err)
	}
	return nil
}

// OriginURL returns the origin remote of the repository at repoRoot.
func OriginURL(repoRoot string) (string, error) {
	return runGit("-C", repoRoot, "remote", "get-url", "origin")
}

// HeadCommit returns the commit checked out in the repository at repoRoot.
func HeadCommit(repoRoot string) (string, error) {
	return runGit("-C", repoRoot, "rev-parse", "HEAD")
}

// runGit returns trimmed stdout. On failure the error carries git's stderr.
func runGit(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Debug("git: command failed: git %s: %v", strings.Join(args, " "), err)
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrGitNotFound
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%w: %s", err, msg)
		}
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}
