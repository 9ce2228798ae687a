package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// setupTempHome points HOME at a fresh directory for the test.
func setupTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NAVI_PATH", "")
	t.Setenv("NAVI_FINDER", "")
	t.Setenv("NAVI_FZF_OVERRIDES", "")
	return home
}

func TestReadLines_CreatesCommentedDefaults(t *testing.T) {
	home := setupTempHome(t)

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Contains(t, lines, "# navi configuration")
	require.Contains(t, lines, "# finder=fzf")

	info, err := os.Stat(filepath.Join(home, ".navirc"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	cfg, err := Parse(lines)
	require.NoError(t, err)
	require.Empty(t, cfg, "defaults are written commented out")
}

func TestReadLines_CRLF(t *testing.T) {
	home := setupTempHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".navirc"), []byte("finder=skim\r\nshell=zsh\r\n"), 0600))

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Equal(t, []string{"finder=skim", "shell=zsh"}, lines)
}

func TestWriteLines_Overwrites(t *testing.T) {
	home := setupTempHome(t)

	require.NoError(t, WriteLines([]string{"finder=skim", "shell=zsh"}))
	require.NoError(t, WriteLines([]string{"finder=builtin"}))

	content, err := os.ReadFile(filepath.Join(home, ".navirc"))
	require.NoError(t, err)
	require.Equal(t, "finder=builtin\n", string(content))
}

func TestWriteLines_KeepsSymlink(t *testing.T) {
	home := setupTempHome(t)
	dotfiles := filepath.Join(home, "dotfiles")
	require.NoError(t, os.Mkdir(dotfiles, 0700))
	target := filepath.Join(dotfiles, "navirc")
	require.NoError(t, os.WriteFile(target, []byte("finder=fzf\n"), 0600))
	link := filepath.Join(home, ".navirc")
	require.NoError(t, os.Symlink(target, link))

	require.NoError(t, WriteLines([]string{"finder=skim"}))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	require.NotZero(t, info.Mode()&os.ModeSymlink)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "finder=skim\n", string(content))
}

func TestWriteLines_LeavesNoTempFiles(t *testing.T) {
	home := setupTempHome(t)

	require.NoError(t, WriteLines([]string{"shell=zsh"}))
	require.NoError(t, WriteLines(nil))

	matches, err := filepath.Glob(filepath.Join(home, ".navirc.tmp.*"))
	require.NoError(t, err)
	require.Empty(t, matches)

	content, err := os.ReadFile(filepath.Join(home, ".navirc"))
	require.NoError(t, err)
	require.Empty(t, content)

	info, err := os.Stat(filepath.Join(home, ".navirc"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "empty input",
			lines: []string{},
			want:  map[string]string{},
		},
		{
			name:  "ignores blank and comment lines",
			lines: []string{"# comment", "", "   ", "finder=skim", "  # indented"},
			want:  map[string]string{"finder": "skim"},
		},
		{
			name:  "trims whitespace",
			lines: []string{"  shell  =  zsh  "},
			want:  map[string]string{"shell": "zsh"},
		},
		{
			name:  "quoted value keeps spaces",
			lines: []string{`fzf_overrides="--height 3 --reverse"`},
			want:  map[string]string{"fzf_overrides": "--height 3 --reverse"},
		},
		{
			name:  "inline comment",
			lines: []string{"finder=skim # faster"},
			want:  map[string]string{"finder": "skim"},
		},
		{
			name:  "empty value is valid",
			lines: []string{"search_url="},
			want:  map[string]string{"search_url": ""},
		},
		{
			name:  "value with equals sign",
			lines: []string{"search_url=https://cheat.sh/~%s?T=1"},
			want:  map[string]string{"search_url": "https://cheat.sh/~%s?T=1"},
		},
		{
			name:    "missing equals",
			lines:   []string{"finder"},
			wantErr: true,
		},
		{
			name:    "empty key",
			lines:   []string{"=value"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name         string
		initialLines []string
		key          string
		value        string
		wantLines    []string
		wantUpdated  bool
	}{
		{
			name:         "add to empty",
			initialLines: []string{},
			key:          "finder",
			value:        "skim",
			wantLines:    []string{"finder=skim"},
		},
		{
			name:         "update existing key",
			initialLines: []string{"finder=fzf", "shell=zsh"},
			key:          "finder",
			value:        "skim",
			wantLines:    []string{"finder=skim", "shell=zsh"},
			wantUpdated:  true,
		},
		{
			name:         "commented default is not replaced",
			initialLines: []string{"# finder=fzf"},
			key:          "finder",
			value:        "skim",
			wantLines:    []string{"# finder=fzf", "finder=skim"},
		},
		{
			name:         "keeps inline comment",
			initialLines: []string{"finder=fzf # default"},
			key:          "finder",
			value:        "builtin",
			wantLines:    []string{"finder=builtin # default"},
			wantUpdated:  true,
		},
		{
			name:         "quotes values with spaces",
			initialLines: []string{},
			key:          "fzf_overrides",
			value:        "--height 3",
			wantLines:    []string{`fzf_overrides="--height 3"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := Set(tt.initialLines, tt.key, tt.value)
			require.Equal(t, tt.wantLines, got)
			require.Equal(t, tt.wantUpdated, updated)
		})
	}
}

func TestUnset(t *testing.T) {
	got, removed := Unset([]string{"# Finder", "finder=skim", "shell=zsh"}, "finder")
	require.True(t, removed)
	require.Equal(t, []string{"# Finder", "shell=zsh"}, got)

	got, removed = Unset([]string{"shell=zsh"}, "finder")
	require.False(t, removed)
	require.Equal(t, []string{"shell=zsh"}, got)
}

func TestGet_Precedence(t *testing.T) {
	home := setupTempHome(t)

	value, ok := Get("finder")
	require.True(t, ok)
	require.Equal(t, "fzf", value, "default")

	require.NoError(t, os.WriteFile(filepath.Join(home, ".navirc"), []byte("finder=skim\n"), 0600))
	value, _ = Get("finder")
	require.Equal(t, "skim", value, "file beats default")

	t.Setenv("NAVI_FINDER", "builtin")
	value, _ = Get("finder")
	require.Equal(t, "builtin", value, "environment beats file")

	_, ok = Get("does_not_exist")
	require.False(t, ok)
}

func TestGetAll_CheatsPathDefault(t *testing.T) {
	setupTempHome(t)

	all, err := GetAll()
	require.NoError(t, err)
	require.NotEmpty(t, all["cheats_path"])
	require.Equal(t, "cheats", filepath.Base(all["cheats_path"]))
}

func TestProvider_SetUnset(t *testing.T) {
	setupTempHome(t)
	p := NewProvider()

	require.NoError(t, p.Set("shell", "fish"))
	value, ok := p.Get("shell")
	require.True(t, ok)
	require.Equal(t, "fish", value)

	require.NoError(t, p.Unset("shell"))
	value, _ = p.Get("shell")
	require.Equal(t, "bash", value)

	require.Error(t, p.Set("bogus", "x"))
}

func TestWithLock_ReleasesLock(t *testing.T) {
	home := setupTempHome(t)
	lockPath := filepath.Join(home, ".navirc.lock")

	ran := false
	require.NoError(t, WithLock(func() error {
		ran = true
		_, err := os.Stat(lockPath)
		return err
	}))
	require.True(t, ran)

	_, err := os.Stat(lockPath)
	require.True(t, os.IsNotExist(err))
}

func testLock(t *testing.T) fileLock {
	t.Helper()
	l := newFileLock(filepath.Join(t.TempDir(), ".navirc"))
	l.timeout = 20 * time.Millisecond
	l.poll = 5 * time.Millisecond
	return l
}

func TestFileLock_HeldByOtherProcess(t *testing.T) {
	l := testLock(t)
	require.NoError(t, os.WriteFile(l.path(), []byte("4242"), 0600))

	err := l.run(func() error {
		t.Fatal("fn must not run without the lock")
		return nil
	})

	require.ErrorIs(t, err, ErrLockTimeout)
	var locked *LockedError
	require.ErrorAs(t, err, &locked)
	require.Equal(t, 4242, locked.PID)
	require.Equal(t, l.target, locked.Path)
	require.Contains(t, err.Error(), "pid 4242")
	require.FileExists(t, l.path())
}

func TestFileLock_StaleLockIsTakenOver(t *testing.T) {
	l := testLock(t)
	require.NoError(t, os.WriteFile(l.path(), []byte("4242"), 0600))
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(l.path(), old, old))

	ran := false
	require.NoError(t, l.run(func() error {
		ran = true
		require.Equal(t, os.Getpid(), l.holder())
		return nil
	}))
	require.True(t, ran)
	require.NoFileExists(t, l.path())
}

func TestFileLock_MissingDirFailsFast(t *testing.T) {
	l := newFileLock(filepath.Join(t.TempDir(), "missing", ".navirc"))

	start := time.Now()
	err := l.run(func() error { return nil })

	require.Error(t, err)
	require.NotErrorIs(t, err, ErrLockTimeout)
	require.Less(t, time.Since(start), l.timeout)
}

func TestFileLock_ReturnsFnError(t *testing.T) {
	l := testLock(t)
	boom := errors.New("boom")

	require.ErrorIs(t, l.run(func() error { return boom }), boom)
	require.NoFileExists(t, l.path())
}
