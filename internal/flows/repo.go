package flows

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wangjing53406/navi/internal/cheat"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/git"
	"github.com/wangjing53406/navi/internal/log"
	"github.com/wangjing53406/navi/internal/ui/style"
)

const importAll = "(all cheatsheets)"

var ErrAlreadyImported = errors.New("repository already imported")

// RepoAdd clones uri and moves its cheat files into the cheats directory.
// When the repository has several cheat files the user picks one or all.
func (f *Flows) RepoAdd(uri string, choice domain.FinderChoice) error {
	normalized, err := domain.NormalizeRepoURI(uri)
	if err != nil {
		return err
	}
	id, err := domain.DeriveRepoID(normalized)
	if err != nil {
		return err
	}

	if !f.deps.Git.IsAvailable() {
		return git.ErrGitNotFound
	}

	repos, err := f.deps.OpenStore()
	if err != nil {
		return fmt.Errorf("open repo store: %w", err)
	}
	defer func() { _ = repos.Close() }()

	if has, err := repos.HasRepo(normalized); err != nil {
		return err
	} else if has {
		return fmt.Errorf("%w: %s", ErrAlreadyImported, normalized)
	}

	cheatsDir := f.deps.CheatsDir()
	if err := os.MkdirAll(cheatsDir, 0755); err != nil {
		return err
	}

	dest := filepath.Join(cheatsDir, id.ToFilesystemSafe())
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("%s already exists", dest)
	}

	// hidden, so cheat.LoadDirs never picks up a half-finished import
	staging, err := os.MkdirTemp(cheatsDir, ".import-")
	if err != nil {
		return err
	}
	defer func() { _ = os.RemoveAll(staging) }()

	clone := filepath.Join(staging, "repo")
	log.Info("flows: cloning %s into %s", normalized, clone)
	if err := f.deps.Git.Clone(normalized, clone); err != nil {
		return err
	}

	files, err := cheatFiles(clone)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", cheat.Ext, normalized)
	}

	selected := files
	if len(files) > 1 {
		picked, err := f.deps.NewFinder(choice, "").Choose(
			append([]string{importAll}, files...),
			domain.FinderOptions{Prompt: "import", Header: "Select the cheatsheets to import"},
		)
		if err != nil {
			return err
		}
		if picked != importAll {
			selected = []string{picked}
		}
	}

	if err := moveCheats(clone, dest, files, selected); err != nil {
		return err
	}

	if _, err := repos.AddRepo(normalized, dest); err != nil {
		if rmErr := os.RemoveAll(dest); rmErr != nil {
			log.Warn("flows: could not remove %s: %v", dest, rmErr)
		}
		return err
	}

	fmt.Fprintf(f.deps.Stdout, "%s %d cheatsheet(s) from %s into %s\n",
		style.Success("Imported"), len(selected), normalized, dest)
	return nil
}

// cheatFiles lists cheat files below root, relative to it, skipping hidden dirs.
func cheatFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == cheat.Ext {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	return files, err
}

func moveCheats(clone, dest string, files, selected []string) error {
	if len(selected) == len(files) {
		return os.Rename(clone, dest)
	}

	for _, rel := range selected {
		target := filepath.Join(dest, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return err
		}
		if err := os.Rename(filepath.Join(clone, filepath.FromSlash(rel)), target); err != nil {
			return err
		}
	}
	return nil
}

type featuredRepo struct {
	URI         string `yaml:"uri"`
	Description string `yaml:"description"`
}

// RepoBrowse lets the user pick one of the featured repositories and imports it.
func (f *Flows) RepoBrowse(choice domain.FinderChoice) error {
	source := f.baseConfig().FeaturedURL
	if source == "" {
		return errors.New("featured_repos_url is not set")
	}

	body, err := f.deps.HTTPGet(source)
	if err != nil {
		return err
	}

	repos := parseFeatured(body)
	if len(repos) == 0 {
		return fmt.Errorf("no featured repositories listed at %s", source)
	}

	lines := make([]string, len(repos))
	for i, r := range repos {
		lines[i] = r.URI
		if r.Description != "" {
			lines[i] += cheat.Delimiter + r.Description
		}
	}

	picked, err := f.deps.NewFinder(choice, "").Choose(lines, domain.FinderOptions{
		Prompt:    "repo",
		Delimiter: cheat.Delimiter,
	})
	if err != nil {
		return err
	}

	uri, _, _ := strings.Cut(picked, cheat.Delimiter)
	return f.RepoAdd(uri, choice)
}

// parseFeatured accepts a YAML list of {uri, description}, a YAML list of
// strings, or one repository per line.
func parseFeatured(body []byte) []featuredRepo {
	var entries []featuredRepo
	if err := yaml.Unmarshal(body, &entries); err == nil && len(entries) > 0 {
		return keepWithURI(entries)
	}

	var uris []string
	if err := yaml.Unmarshal(body, &uris); err == nil && len(uris) > 0 {
		entries = make([]featuredRepo, len(uris))
		for i, u := range uris {
			entries[i] = featuredRepo{URI: u}
		}
		return keepWithURI(entries)
	}

	entries = nil
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, featuredRepo{URI: line})
	}
	return entries
}

func keepWithURI(entries []featuredRepo) []featuredRepo {
	out := entries[:0]
	for _, e := range entries {
		if e.URI = strings.TrimSpace(e.URI); e.URI != "" {
			out = append(out, e)
		}
	}
	return out
}
