package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "navi"

// AppDataDir returns the application config directory (log file, database).
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
//   - macOS: ~/Library/Application Support/navi
//   - Linux: $XDG_DATA_HOME/navi or ~/.local/share/navi
//   - Windows: %LOCALAPPDATA%\navi
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// CheatsDir is where imported cheatsheet repositories are cloned to.
func CheatsDir() string {
	return filepath.Join(AppLocalDataDir(), "cheats")
}

func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".navirc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "navi.log")
}

// DBPath returns the path to the repository database.
func DBPath() string {
	return filepath.Join(AppDataDir(), "navi.db")
}
