package repos

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/testutil"
	"github.com/wangjing53406/navi/internal/ui/style"
	"github.com/wangjing53406/navi/internal/usage"
)

type fakeStore struct {
	repos   []domain.ImportedRepo
	removed []string
	closed  bool
}

func (s *fakeStore) AddRepo(uri, path string) (domain.ImportedRepo, error) {
	return domain.ImportedRepo{}, errors.New("not used")
}

func (s *fakeStore) HasRepo(uri string) (bool, error) { return false, nil }

func (s *fakeStore) ListRepos() ([]domain.ImportedRepo, error) { return s.repos, nil }

func (s *fakeStore) RemoveRepo(uri string) error {
	s.removed = append(s.removed, uri)
	return nil
}

func (s *fakeStore) Close() error {
	s.closed = true
	return nil
}

type harness struct {
	store     *fakeStore
	cheatsDir string
	deleted   []string
	out       strings.Builder
}

func newHarness(t *testing.T, repos ...domain.ImportedRepo) *harness {
	t.Helper()
	style.Init(false, nil)
	return &harness{store: &fakeStore{repos: repos}, cheatsDir: filepath.Join(t.TempDir(), "cheats")}
}

func (h *harness) deps() Deps {
	return Deps{
		OpenStore:  func() (domain.RepoStore, error) { return h.store, nil },
		CheatsDir:  func() string { return h.cheatsDir },
		RemoveAll:  func(p string) error { h.deleted = append(h.deleted, p); return nil },
		FormatTime: func(t time.Time) string { return t.UTC().Format("2006-01-02") },
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(&h.out, format, a...)
		},
		Println: func(a ...any) (int, error) {
			return fmt.Fprintln(&h.out, a...)
		},
	}
}

func TestList_Empty(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, list(nil, dispatchers.NewParsedFlags(nil), h.deps()))
	require.Contains(t, h.out.String(), "no imported repositories")
	require.True(t, h.store.closed)
}

func TestList(t *testing.T) {
	h := newHarness(t, domain.ImportedRepo{
		URI:     "https://github.com/denisidoro/cheats",
		Path:    "/cheats/github.com__denisidoro__cheats",
		AddedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})

	require.NoError(t, list(nil, dispatchers.NewParsedFlags(nil), h.deps()))

	out := h.out.String()
	require.Contains(t, out, "https://github.com/denisidoro/cheats  added 2024-03-01")
	require.Contains(t, out, "/cheats/github.com__denisidoro__cheats")
}

func TestRemove(t *testing.T) {
	h := newHarness(t)
	clone := filepath.Join(h.cheatsDir, "github.com__denisidoro__cheats")
	h.store.repos = []domain.ImportedRepo{{URI: "https://github.com/denisidoro/cheats", Path: clone}}

	require.NoError(t, remove([]string{"denisidoro/cheats"}, dispatchers.NewParsedFlags(nil), h.deps()))

	require.Equal(t, []string{"https://github.com/denisidoro/cheats"}, h.store.removed)
	require.Equal(t, []string{clone}, h.deleted)
	require.Contains(t, h.out.String(), "removed https://github.com/denisidoro/cheats")
}

func TestRemove_KeepFiles(t *testing.T) {
	h := newHarness(t)
	h.store.repos = []domain.ImportedRepo{{URI: "https://github.com/a/b", Path: filepath.Join(h.cheatsDir, "x")}}

	require.NoError(t, remove([]string{"a/b"}, dispatchers.NewParsedFlags([]string{"--keep-files"}), h.deps()))

	require.Len(t, h.store.removed, 1)
	require.Empty(t, h.deleted)
}

func TestRemove_NeverDeletesOutsideCheatsDir(t *testing.T) {
	h := newHarness(t)
	h.store.repos = []domain.ImportedRepo{{URI: "https://github.com/a/b", Path: "/home/me/work"}}

	require.NoError(t, remove([]string{"a/b"}, dispatchers.NewParsedFlags(nil), h.deps()))

	require.Len(t, h.store.removed, 1)
	require.Empty(t, h.deleted)
}

func TestRemove_NotImported(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, remove([]string{"a/b"}, dispatchers.NewParsedFlags(nil), h.deps()))

	require.Empty(t, h.store.removed)
	require.Contains(t, h.out.String(), "repository not imported: https://github.com/a/b")
}

func TestRemove_MissingArgument(t *testing.T) {
	err := remove(nil, dispatchers.NewParsedFlags(nil), newHarness(t).deps())

	var uerr *usage.Error
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, usage.ErrMissingArgument, uerr.Kind)
}

func TestIsWithin(t *testing.T) {
	require.True(t, isWithin("/a/cheats", "/a/cheats/x"))
	require.False(t, isWithin("/a/cheats", "/a/cheats"))
	require.False(t, isWithin("/a/cheats", "/a/other"))
	require.False(t, isWithin("/a/cheats", "/a/cheats/../x"))
}

// sharedStore keeps the test store open across actions.
type sharedStore struct{ domain.RepoStore }

func (sharedStore) Close() error { return nil }

func TestRemove_WithSQLiteStore(t *testing.T) {
	h := newHarness(t)
	s := testutil.NewTestStore(t)
	testutil.SeedRepos(t, s, h.cheatsDir, "https://github.com/a/one", "https://github.com/b/two")

	deps := h.deps()
	deps.OpenStore = func() (domain.RepoStore, error) { return sharedStore{s}, nil }

	require.NoError(t, remove([]string{"a/one"}, dispatchers.NewParsedFlags(nil), deps))
	require.Equal(t, []string{filepath.Join(h.cheatsDir, "one")}, h.deleted)

	h.out.Reset()
	require.NoError(t, list(nil, dispatchers.NewParsedFlags(nil), deps))
	require.NotContains(t, h.out.String(), "a/one")
	require.Contains(t, h.out.String(), "https://github.com/b/two")
}
