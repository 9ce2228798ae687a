// Package migrations applies the embedded, versioned schema files in order.
//
// Files are named NN_description.sql. Each one runs in its own transaction
// and is recorded in schema_migrations.
package migrations

import (
	"cmp"
	"database/sql"
	"embed"
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

type Migration struct {
	Version     int
	Description string
	SQL         string
}

const createSchemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load returns the embedded migrations sorted by version.
func Load() ([]Migration, error) {
	entries, err := sqlFiles.ReadDir("sql")
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var all []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		version, description, err := parseFilename(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", entry.Name(), err)
		}

		content, err := sqlFiles.ReadFile(path.Join("sql", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}

		all = append(all, Migration{Version: version, Description: description, SQL: string(content)})
	}

	slices.SortFunc(all, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })

	for i := 1; i < len(all); i++ {
		if all[i].Version == all[i-1].Version {
			return nil, fmt.Errorf("duplicate version %d: %s and %s",
				all[i].Version, all[i-1].Description, all[i].Description)
		}
	}

	return all, nil
}

func parseFilename(name string) (int, string, error) {
	versionPart, description, ok := strings.Cut(strings.TrimSuffix(name, ".sql"), "_")
	if !ok {
		return 0, "", fmt.Errorf("invalid format, expected NN_description.sql")
	}

	version, err := strconv.Atoi(versionPart)
	if err != nil {
		return 0, "", fmt.Errorf("invalid version number: %w", err)
	}

	return version, description, nil
}

// Run applies every migration newer than the current schema version.
func Run(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %02d_%s: %w", m.Version, m.Description, err)
		}
	}

	return nil
}

func apply(db *sql.DB, m Migration) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(m.SQL); err != nil {
		return err
	}

	if _, err = tx.Exec(
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	); err != nil {
		return fmt.Errorf("record migration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// CurrentVersion returns the highest applied version, 0 for a fresh database.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(createSchemaTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("get current version: %w", err)
	}
	return int(version.Int64), nil
}

// Pending returns migrations not yet applied.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}

	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(all, func(m Migration) bool { return m.Version <= current }), nil
}
