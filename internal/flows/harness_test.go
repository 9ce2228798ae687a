package flows

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wangjing53406/navi/internal/cheat"
	"github.com/wangjing53406/navi/internal/domain"
)

type fakeFinder struct {
	pick  func(lines []string, opts domain.FinderOptions) (string, error)
	opts  []domain.FinderOptions
	lines [][]string
}

func (f *fakeFinder) Choose(lines []string, opts domain.FinderOptions) (string, error) {
	f.opts = append(f.opts, opts)
	f.lines = append(f.lines, lines)
	if f.pick == nil {
		return lines[0], nil
	}
	return f.pick(lines, opts)
}

type fakeGit struct {
	available bool
	files     map[string]string
	cloned    []string
	err       error
}

func (g *fakeGit) IsAvailable() bool { return g.available }

func (g *fakeGit) Clone(uri, dest string) error {
	g.cloned = append(g.cloned, uri)
	if g.err != nil {
		return g.err
	}
	for rel, content := range g.files {
		p := filepath.Join(dest, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

type fakeStore struct {
	repos  map[string]domain.ImportedRepo
	addErr error
	closed bool
}

func (s *fakeStore) AddRepo(uri, path string) (domain.ImportedRepo, error) {
	if s.addErr != nil {
		return domain.ImportedRepo{}, s.addErr
	}
	r := domain.ImportedRepo{ID: "id-" + uri, URI: uri, Path: path, AddedAt: time.Unix(0, 0)}
	s.repos[uri] = r
	return r, nil
}

func (s *fakeStore) HasRepo(uri string) (bool, error) {
	_, ok := s.repos[uri]
	return ok, nil
}

func (s *fakeStore) ListRepos() ([]domain.ImportedRepo, error) {
	var out []domain.ImportedRepo
	for _, r := range s.repos {
		out = append(out, r)
	}
	return out, nil
}

func (s *fakeStore) RemoveRepo(uri string) error {
	delete(s.repos, uri)
	return nil
}

func (s *fakeStore) Close() error {
	s.closed = true
	return nil
}

type fakeConfig map[string]string

func (c fakeConfig) Get(key string) (string, bool) {
	v, ok := c[key]
	return v, ok
}

func (c fakeConfig) GetAll() (map[string]string, error) { return c, nil }

func (c fakeConfig) Set(key, value string) error {
	c[key] = value
	return nil
}

type harness struct {
	flows     *Flows
	out       *bytes.Buffer
	finder    *fakeFinder
	git       *fakeGit
	store     *fakeStore
	config    fakeConfig
	cheats    []cheat.Cheat
	env       map[string]string
	shell     map[string]string
	http      map[string]string
	prompts   map[string]string
	ran       []string
	opened    []string
	cheatsDir string
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		out:       &bytes.Buffer{},
		finder:    &fakeFinder{},
		git:       &fakeGit{available: true},
		store:     &fakeStore{repos: map[string]domain.ImportedRepo{}},
		config:    fakeConfig{"finder": "fzf", "featured_repos_url": "https://example.com/featured"},
		env:       map[string]string{},
		shell:     map[string]string{},
		http:      map[string]string{},
		prompts:   map[string]string{},
		cheatsDir: filepath.Join(t.TempDir(), "cheats"),
	}

	h.flows = New(Deps{
		Stdout:     h.out,
		Stderr:     io.Discard,
		Stdin:      strings.NewReader(""),
		Getenv:     func(k string) string { return h.env[k] },
		Executable: func() (string, error) { return "/usr/local/bin/navi", nil },
		NewFinder:  func(domain.FinderChoice, string) domain.Finder { return h.finder },
		LoadCheats: func([]string) ([]cheat.Cheat, error) { return h.cheats, nil },
		Git:        h.git,
		OpenStore:  func() (domain.RepoStore, error) { return h.store, nil },
		Config:     h.config,
		CheatsDir:  func() string { return h.cheatsDir },
		HTTPGet: func(url string) ([]byte, error) {
			body, ok := h.http[url]
			if !ok {
				return nil, fmt.Errorf("GET %s: 404 Not Found", url)
			}
			return []byte(body), nil
		},
		RunShell: func(shell, command string) error {
			h.ran = append(h.ran, shell+": "+command)
			return nil
		},
		ShellOutput: func(shell, command, stdin string) (string, error) {
			if command == "tr a-z A-Z" {
				return strings.ToUpper(stdin), nil
			}
			out, ok := h.shell[command]
			if !ok {
				return "", fmt.Errorf("unexpected command %q", command)
			}
			return out, nil
		},
		Prompt: func(name string) (string, error) {
			v, ok := h.prompts[name]
			if !ok {
				return "", fmt.Errorf("unexpected prompt for %s", name)
			}
			return v, nil
		},
		OpenURL: func(u string) error {
			h.opened = append(h.opened, u)
			return nil
		},
	})

	return h
}

func mustParse(t *testing.T, src string) []cheat.Cheat {
	t.Helper()
	cheats, err := cheat.Parse(strings.NewReader(src), "test.cheat")
	require.NoError(t, err)
	return cheats
}

// pickContaining selects the first line containing s.
func pickContaining(s string) func([]string, domain.FinderOptions) (string, error) {
	return func(lines []string, _ domain.FinderOptions) (string, error) {
		for _, l := range lines {
			if strings.Contains(l, s) {
				return l, nil
			}
		}
		return "", fmt.Errorf("no line contains %q", s)
	}
}
