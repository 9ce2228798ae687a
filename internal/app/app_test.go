package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wangjing53406/navi/internal/log"
	"github.com/wangjing53406/navi/internal/ui/style"
)

func TestDefaultOptions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	opts := DefaultOptions()

	require.False(t, opts.StyleEnabled)
	require.False(t, opts.LogEnabled)
	require.Equal(t, log.LevelWarn, opts.LogLevel)
	require.NotEmpty(t, opts.LogPath)
	require.Equal(t, "default", opts.StyleConfig["theme"])
}

func TestInit_StyleDisabled(t *testing.T) {
	cleanup := Init(Options{})
	defer cleanup()

	require.False(t, style.Enabled())
	require.Equal(t, "plain", style.Info("plain"))
}

func TestInit_OpensLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "navi.log")

	cleanup := Init(Options{LogEnabled: true, LogLevel: log.LevelDebug, LogPath: logPath})
	cleanup()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), "navi "+Version+" starting"))
}

func TestInit_LogDisabledCreatesNoFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "navi.log")

	cleanup := Init(Options{LogPath: logPath})
	cleanup()

	_, err := os.Stat(logPath)
	require.True(t, os.IsNotExist(err))
}
