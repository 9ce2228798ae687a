package repos

import (
	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	s, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	imported, err := s.ListRepos()
	if err != nil {
		return err
	}

	if len(imported) == 0 {
		_, _ = deps.Println("no imported repositories")
		_, _ = deps.Println(style.Muted("Use 'navi repo add <uri>' or 'navi repo browse' to import cheatsheets"))
		return nil
	}

	for _, r := range imported {
		_, _ = deps.Printf("%s  %s\n", r.URI, style.Muted("added "+deps.FormatTime(r.AddedAt.Local())))
		_, _ = deps.Printf("    %s\n", style.Muted(r.Path))
	}
	return nil
}
