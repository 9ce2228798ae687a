package config

import (
	"fmt"

	"github.com/wangjing53406/navi/internal/config"
)

type Deps struct {
	ReadLines  func() ([]string, error)
	WriteLines func([]string) error
	Set        func([]string, string, string) ([]string, bool)
	Unset      func([]string, string) ([]string, bool)
	Get        func(string) (string, bool)
	GetAll     func() (map[string]string, error)
	WithLock   func(func() error) error
	Printf     func(string, ...any) (int, error)
	Println    func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		ReadLines:  config.ReadLines,
		WriteLines: config.WriteLines,
		Set:        config.Set,
		Unset:      config.Unset,
		Get:        config.Get,
		GetAll:     config.GetAll,
		WithLock:   config.WithLock,
		Printf:     fmt.Printf,
		Println:    fmt.Println,
	}
}
