// Package store records imported cheatsheet repositories in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"

	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/log"
	"github.com/wangjing53406/navi/internal/store/migrations"
)

var (
	ErrRepoExists   = errors.New("repository already imported")
	ErrRepoNotFound = errors.New("repository not imported")
)

// Store implements domain.RepoStore.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

var _ domain.RepoStore = (*Store)(nil)

// New opens the database at path and runs pending migrations.
func New(path string) (*Store, error) {
	log.Debug("store: opening database at %s", path)

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func setDBPermissions(path string) {
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// AddRepo records uri as cloned into path.
func (s *Store) AddRepo(uri, path string) (domain.ImportedRepo, error) {
	repo := domain.ImportedRepo{
		ID:      uuid.NewString(),
		URI:     uri,
		Path:    path,
		AddedAt: s.now().UTC().Truncate(time.Second),
	}

	_, err := s.db.Exec(
		`INSERT INTO repos (id, uri, path, added_at) VALUES (?, ?, ?, ?)`,
		repo.ID, repo.URI, repo.Path, repo.AddedAt.Format(time.RFC3339),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ImportedRepo{}, fmt.Errorf("%w: %s", ErrRepoExists, uri)
		}
		return domain.ImportedRepo{}, fmt.Errorf("insert repo: %w", err)
	}

	log.Info("store: recorded repo %s at %s", uri, path)
	return repo, nil
}

func (s *Store) HasRepo(uri string) (bool, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM repos WHERE uri = ?`, uri).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListRepos returns every recorded repo, oldest first.
func (s *Store) ListRepos() ([]domain.ImportedRepo, error) {
	rows, err := s.db.Query(`
		SELECT id, uri, path, added_at
		FROM repos
		ORDER BY added_at, uri
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var repos []domain.ImportedRepo
	for rows.Next() {
		var (
			r       domain.ImportedRepo
			addedAt string
		)
		if err := rows.Scan(&r.ID, &r.URI, &r.Path, &addedAt); err != nil {
			return nil, err
		}
		r.AddedAt, err = time.Parse(time.RFC3339, addedAt)
		if err != nil {
			return nil, fmt.Errorf("parse added_at for %s: %w", r.URI, err)
		}
		repos = append(repos, r)
	}
	return repos, rows.Err()
}

func (s *Store) RemoveRepo(uri string) error {
	res, err := s.db.Exec(`DELETE FROM repos WHERE uri = ?`, uri)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRepoNotFound, uri)
	}
	return nil
}
