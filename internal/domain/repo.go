package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
)

// RepoID constants for filesystem-safe conversion.
const (
	RepoIDMaxLength   = 100 // Maximum length before hashing
	RepoIDTruncateLen = 50  // Length to truncate to when hashing
)

var (
	ErrEmptyRepoURI     = errors.New("empty repository uri")
	ErrRepoURITraversal = errors.New("invalid repository uri: contains path traversal sequence")

	shorthandPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)
	unsafeChars      = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)
	repeatedUnders   = regexp.MustCompile(`_+`)
)

// RepoID identifies an imported cheatsheet repository, e.g. github.com/denisidoro/cheats.
type RepoID string

// String returns the string representation of the RepoID.
func (id RepoID) String() string {
	return string(id)
}

// ToFilesystemSafe converts the RepoID to a directory name.
func (id RepoID) ToFilesystemSafe() string {
	s := string(id)

	s = strings.ReplaceAll(s, "/", "__")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, "@", "_")
	s = unsafeChars.ReplaceAllString(s, "_")
	s = repeatedUnders.ReplaceAllStringFunc(s, func(m string) string {
		if len(m) >= 2 {
			return "__"
		}
		return m
	})
	s = strings.Trim(s, "_")

	if len(s) > RepoIDMaxLength {
		hash := sha256.Sum256([]byte(id))
		s = s[:RepoIDTruncateLen] + "_" + hex.EncodeToString(hash[:8])
	}

	return s
}

// NormalizeRepoURI expands the user/repo shorthand to a GitHub https URL and
// trims whitespace. Other URIs are returned as given.
func NormalizeRepoURI(uri string) (string, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return "", ErrEmptyRepoURI
	}
	if strings.Contains(uri, "..") || strings.Contains(uri, "\x00") {
		return "", ErrRepoURITraversal
	}
	if shorthandPattern.MatchString(uri) {
		return "https://github.com/" + uri, nil
	}
	return uri, nil
}

// DeriveRepoID extracts a normalized repository identifier from a clone URI.
func DeriveRepoID(uri string) (RepoID, error) {
	normalized, err := NormalizeRepoURI(uri)
	if err != nil {
		return "", err
	}

	url := normalized
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "git://")
	url = strings.TrimPrefix(url, "ssh://")

	// git@github.com:user/repo.git
	if rest, ok := strings.CutPrefix(url, "git@"); ok {
		url = strings.Replace(rest, ":", "/", 1)
	}

	url = strings.TrimSuffix(url, "/")
	url = strings.TrimSuffix(url, ".git")

	if url == "" {
		return "", ErrEmptyRepoURI
	}

	return RepoID(strings.ToLower(url)), nil
}
