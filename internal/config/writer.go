package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wangjing53406/navi/internal/paths"
)

// WriteLines replaces the content of ~/.navirc with lines.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return writeFileAtomic(configPath, []byte(b.String()), 0600)
}

// writeFileAtomic renames a fully written temp file over path. A symlinked
// path is followed, so the link itself survives.
func writeFileAtomic(path string, data []byte, perm os.FileMode) (err error) {
	if resolved, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		path = resolved
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
