package cheat

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/wangjing53406/navi/internal/log"
)

// Ext is the extension of cheat files.
const Ext = ".cheat"

// SplitPaths splits a --path value into directories.
func SplitPaths(path string) []string {
	var dirs []string
	for _, p := range filepath.SplitList(path) {
		if p = strings.TrimSpace(p); p != "" {
			dirs = append(dirs, p)
		}
	}
	return dirs
}

// LoadDirs parses every .cheat file below dirs. Missing directories are
// skipped; a file that fails to parse aborts the load.
func LoadDirs(dirs []string) ([]Cheat, error) {
	var cheats []Cheat

	for _, dir := range dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			log.Debug("cheat: skipping missing directory %s", dir)
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != dir && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != Ext {
				return nil
			}

			parsed, err := parseFile(path)
			if err != nil {
				return err
			}
			cheats = append(cheats, parsed...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	log.Debug("cheat: loaded %d cheats from %d directories", len(cheats), len(dirs))
	return cheats, nil
}

func parseFile(path string) ([]Cheat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Parse(f, path)
}
