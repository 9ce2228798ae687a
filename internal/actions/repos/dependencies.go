package repos

import (
	"fmt"
	"os"
	"time"

	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/format"
	"github.com/wangjing53406/navi/internal/paths"
	"github.com/wangjing53406/navi/internal/store"
)

type Deps struct {
	OpenStore  func() (domain.RepoStore, error)
	CheatsDir  func() string
	RemoveAll  func(string) error
	FormatTime func(time.Time) string
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		OpenStore:  openStore,
		CheatsDir:  paths.CheatsDir,
		RemoveAll:  os.RemoveAll,
		FormatTime: format.DateTime,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
	}
}

func openStore() (domain.RepoStore, error) {
	return store.New(paths.DBPath())
}
