package config

import (
	"github.com/wangjing53406/navi/internal/dispatchers"
	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

// list prints every key grouped by section, in domain.ConfigKeys order.
func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	values, err := deps.GetAll()
	if err != nil {
		return err
	}

	for i, section := range domain.ConfigSections() {
		if i > 0 {
			_, _ = deps.Println()
		}
		_, _ = deps.Println(style.Header("# " + section))
		for _, key := range domain.ConfigKeys {
			if key.Section != section {
				continue
			}
			_, _ = deps.Printf("%s=%s\n", key.Name, values[key.Name])
		}
	}
	return nil
}
