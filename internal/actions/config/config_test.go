package config

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/ui/style"
	"github.com/wangjing53406/navi/internal/usage"
)

// fakeFile is an in-memory config file behind the Deps seams.
type fakeFile struct {
	lines   []string
	values  map[string]string
	out     strings.Builder
	locked  int
	readErr error
}

func (f *fakeFile) deps() Deps {
	return Deps{
		ReadLines: func() ([]string, error) {
			return append([]string(nil), f.lines...), f.readErr
		},
		WriteLines: func(lines []string) error {
			f.lines = lines
			return nil
		},
		Set: func(lines []string, key, value string) ([]string, bool) {
			for i, l := range lines {
				if strings.HasPrefix(l, key+"=") {
					lines[i] = key + "=" + value
					return lines, true
				}
			}
			return append(lines, key+"="+value), false
		},
		Unset: func(lines []string, key string) ([]string, bool) {
			var out []string
			for _, l := range lines {
				if !strings.HasPrefix(l, key+"=") {
					out = append(out, l)
				}
			}
			return out, len(out) != len(lines)
		},
		Get: func(key string) (string, bool) {
			v, ok := f.values[key]
			return v, ok
		},
		GetAll: func() (map[string]string, error) {
			return f.values, nil
		},
		WithLock: func(fn func() error) error {
			f.locked++
			return fn()
		},
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(&f.out, format, a...)
		},
		Println: func(a ...any) (int, error) {
			return fmt.Fprintln(&f.out, a...)
		},
	}
}

func noFlags() *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags(nil)
}

func requireKind(t *testing.T, err error, kind usage.ErrorKind) {
	t.Helper()
	var uerr *usage.Error
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, kind, uerr.Kind)
}

func TestGet(t *testing.T) {
	f := &fakeFile{values: map[string]string{"finder": "skim"}}

	require.NoError(t, get([]string{"finder"}, noFlags(), f.deps()))
	require.Equal(t, "skim\n", f.out.String())
}

func TestGet_Errors(t *testing.T) {
	f := &fakeFile{}

	requireKind(t, get(nil, noFlags(), f.deps()), usage.ErrMissingArgument)
	requireKind(t, get([]string{"nonexistent"}, noFlags(), f.deps()), usage.ErrInvalidConfigKey)
}

func TestSet(t *testing.T) {
	tests := []struct {
		name      string
		initial   []string
		args      []string
		wantLines []string
		wantOut   string
	}{
		{
			name:      "adds new key",
			args:      []string{"shell", "zsh"},
			wantLines: []string{"shell=zsh"},
			wantOut:   "added shell=zsh\n",
		},
		{
			name:      "updates existing key",
			initial:   []string{"shell=bash"},
			args:      []string{"shell", "fish"},
			wantLines: []string{"shell=fish"},
			wantOut:   "updated shell=fish\n",
		},
		{
			name:      "normalises finder alias",
			args:      []string{"finder", "SK"},
			wantLines: []string{"finder=skim"},
			wantOut:   "added finder=skim\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFile{lines: tt.initial}

			require.NoError(t, set(tt.args, noFlags(), f.deps()))
			require.Equal(t, tt.wantLines, f.lines)
			require.Equal(t, tt.wantOut, f.out.String())
			require.Equal(t, 1, f.locked)
		})
	}
}

func TestSet_Errors(t *testing.T) {
	f := &fakeFile{}

	requireKind(t, set([]string{"shell"}, noFlags(), f.deps()), usage.ErrMissingArgument)
	requireKind(t, set([]string{"colour", "red"}, noFlags(), f.deps()), usage.ErrInvalidConfigKey)
	requireKind(t, set([]string{"finder", "rofi"}, noFlags(), f.deps()), usage.ErrInvalidFinder)
	require.Zero(t, f.locked)
}

func TestSet_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	f := &fakeFile{readErr: boom}

	require.ErrorIs(t, set([]string{"shell", "zsh"}, noFlags(), f.deps()), boom)
	require.Empty(t, f.out.String())
}

func TestUnset(t *testing.T) {
	f := &fakeFile{lines: []string{"shell=zsh", "finder=skim"}}

	require.NoError(t, unset([]string{"shell"}, noFlags(), f.deps()))
	require.Equal(t, []string{"finder=skim"}, f.lines)
	require.Equal(t, "unset shell\n", f.out.String())
}

func TestUnset_NotSet(t *testing.T) {
	f := &fakeFile{lines: []string{"finder=skim"}}

	require.NoError(t, unset([]string{"shell"}, noFlags(), f.deps()))
	require.Equal(t, []string{"finder=skim"}, f.lines)
	require.Equal(t, "shell was not set\n", f.out.String())
}

func TestUnset_All(t *testing.T) {
	f := &fakeFile{lines: []string{"shell=zsh", "finder=skim"}}

	require.NoError(t, unset(nil, dispatchers.NewParsedFlags([]string{"--all"}), f.deps()))
	require.Empty(t, f.lines)

	requireKind(t, unset([]string{"shell"}, dispatchers.NewParsedFlags([]string{"--all"}), f.deps()), usage.ErrInvalidFlag)
}

func TestList_GroupsBySection(t *testing.T) {
	style.Init(false, nil)
	f := &fakeFile{values: map[string]string{"finder": "fzf", "shell": "bash", "theme": "ocean"}}

	require.NoError(t, list(nil, noFlags(), f.deps()))

	out := f.out.String()
	require.Contains(t, out, "# Finder\nfinder=fzf\n")
	require.Contains(t, out, "shell=bash")
	require.Contains(t, out, "theme=ocean")
	require.Less(t, strings.Index(out, "# Finder"), strings.Index(out, "# Logging"))
}
