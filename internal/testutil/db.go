// Package testutil holds helpers shared by tests in several packages.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangjing53406/navi/internal/store"
)

// NewTestStore opens a repo store in a fresh temp directory with migrations
// applied. It is closed when the test finishes.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "navi.db"))
	require.NoError(t, err, "failed to open test store")

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

// SeedRepos records each uri with a clone path under dir.
func SeedRepos(t *testing.T, s *store.Store, dir string, uris ...string) {
	t.Helper()

	for _, uri := range uris {
		_, err := s.AddRepo(uri, filepath.Join(dir, filepath.Base(uri)))
		require.NoError(t, err, "failed to seed repo %s", uri)
	}
}
