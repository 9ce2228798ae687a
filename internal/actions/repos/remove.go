package repos

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/ui/style"
	"github.com/wangjing53406/navi/internal/usage"
)

func Remove(args []string, flags *dispatchers.ParsedFlags) error {
	return remove(args, flags, DefaultDeps())
}

// remove forgets an imported repository. Its clone is deleted too unless
// --keep-files is given or it lives outside the cheats directory.
func remove(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("uri")
	}

	uri, err := domain.NormalizeRepoURI(args[0])
	if err != nil {
		return err
	}

	s, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	imported, err := s.ListRepos()
	if err != nil {
		return err
	}

	var target *domain.ImportedRepo
	for i := range imported {
		if imported[i].URI == uri {
			target = &imported[i]
			break
		}
	}
	if target == nil {
		_, _ = deps.Printf("repository not imported: %s\n", uri)
		return nil
	}

	if err := s.RemoveRepo(uri); err != nil {
		return err
	}

	if !flags.Has("--keep-files") && isWithin(deps.CheatsDir(), target.Path) {
		if err := deps.RemoveAll(target.Path); err != nil {
			return fmt.Errorf("remove %s: %w", target.Path, err)
		}
	}

	_, _ = deps.Printf("removed %s\n", style.Success(uri))
	return nil
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
