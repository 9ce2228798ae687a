// Package app wires process-wide state: styling, logging and the version.
package app

import (
	"github.com/wangjing53406/navi/internal/config"
	"github.com/wangjing53406/navi/internal/log"
	"github.com/wangjing53406/navi/internal/paths"
	"github.com/wangjing53406/navi/internal/ui/style"
)

// Version is set at build time with -ldflags "-X .../internal/app.Version=...".
var Version = "dev"

// Options configures process startup.
type Options struct {
	StyleEnabled bool
	StyleConfig  map[string]string

	LogEnabled bool
	LogLevel   log.Level
	LogPath    string
}

// DefaultOptions reads the logging and theme settings from the config file.
// Styling stays off until the caller knows stdout is a terminal.
func DefaultOptions() Options {
	cfg, _ := config.GetAll()

	return Options{
		StyleConfig: cfg,
		LogEnabled:  cfg["enable_log"] == "true",
		LogLevel:    log.ParseLevel(cfg["log_level"]),
		LogPath:     paths.LogFilePath(),
	}
}

// Init applies opts and returns a function that releases what it opened.
// A log file that cannot be opened leaves logging disabled.
func Init(opts Options) (cleanup func()) {
	style.Init(opts.StyleEnabled, opts.StyleConfig)

	if opts.LogEnabled && opts.LogPath != "" {
		if err := log.Init(opts.LogPath, opts.LogLevel); err == nil {
			log.Debug("navi %s starting", Version)
		}
	}

	return func() {
		_ = log.Close()
	}
}
