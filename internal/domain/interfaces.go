package domain

import "time"

// Finder picks one line out of many.
type Finder interface {
	// Choose shows lines and returns the selected one.
	// A cancelled selection returns finder.ErrCancelled.
	Choose(lines []string, opts FinderOptions) (string, error)
}

// FinderOptions tunes a single Choose call.
type FinderOptions struct {
	Prompt  string
	Query   string // initial query typed into the finder
	Header  string
	Preview string // preview command; {} is replaced by the current line
	// Delimiter and WithNth restrict which columns are displayed and searched.
	Delimiter string
	WithNth   string
	// Multi allows several lines to be picked; Choose joins them with "\n".
	Multi bool
	// AcceptQuery returns the typed query when no line is picked.
	AcceptQuery bool
}

// GitProvider defines operations for interacting with git.
type GitProvider interface {
	// IsAvailable checks if git is installed and accessible.
	IsAvailable() bool
	// Clone shallow-clones uri into dest.
	Clone(uri, dest string) error
}

// ImportedRepo is a cheatsheet repository pulled in with `navi repo add`.
type ImportedRepo struct {
	ID      string
	URI     string
	Path    string
	AddedAt time.Time
}

// RepoStore records imported cheatsheet repositories.
type RepoStore interface {
	// AddRepo records a repository. It fails if the URI is already recorded.
	AddRepo(uri, path string) (ImportedRepo, error)
	// HasRepo reports whether uri has been imported.
	HasRepo(uri string) (bool, error)
	// ListRepos returns every imported repository, oldest first.
	ListRepos() ([]ImportedRepo, error)
	// RemoveRepo forgets a repository.
	RemoveRepo(uri string) error
	// Close closes the store connection.
	Close() error
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)
	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)
	// Set sets a configuration value.
	Set(key, value string) error
}

// Logger defines logging operations.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// Styler defines text styling operations.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}
