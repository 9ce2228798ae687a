package flows

import (
	"embed"
	"fmt"
)

//go:embed widgets
var widgetFS embed.FS

var widgetFiles = map[string]string{
	"bash": "widgets/navi.plugin.bash",
	"zsh":  "widgets/navi.plugin.zsh",
	"fish": "widgets/navi.plugin.fish",
}

// Widget prints the shell integration script for shell.
func (f *Flows) Widget(shell string) error {
	file, ok := widgetFiles[shell]
	if !ok {
		return fmt.Errorf("unsupported shell %q (expected bash, zsh or fish)", shell)
	}

	script, err := widgetFS.ReadFile(file)
	if err != nil {
		return err
	}

	_, err = f.deps.Stdout.Write(script)
	return err
}
