package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/wangjing53406/navi/internal/domain"
	"github.com/wangjing53406/navi/internal/log"
	"github.com/wangjing53406/navi/internal/paths"
)

// ReadLines returns the raw lines of ~/.navirc, creating the file with
// commented defaults on first use.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

// initializeDefaults renders every key commented out with its default, so the
// file documents itself without pinning values.
func initializeDefaults() []string {
	lines := []string{
		"# navi configuration",
		"# Edit values below or use: navi config set <key> <value>",
	}

	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}

		value := key.Default
		if fn, ok := Defaults[key.Name]; ok {
			value = fn()
		}
		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}
		lines = append(lines, "# "+key.Name+"="+value)
	}

	return lines
}
