package config

import (
	"fmt"
	"strings"
)

// Parse turns config lines into a key/value map.
// Blank lines and # comments are skipped, values may be double quoted and
// may carry a trailing " # comment".
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		key, value, ok, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("config line %d: %w", i+1, err)
		}
		if !ok {
			continue
		}
		cfg[key] = value
	}

	return cfg, nil
}

// parseLine returns ok=false for blank and comment lines.
func parseLine(line string) (key, value string, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}

	k, v, found := strings.Cut(trimmed, "=")
	if !found {
		return "", "", false, fmt.Errorf("missing '=' in %q", trimmed)
	}

	key = strings.TrimSpace(k)
	if key == "" {
		return "", "", false, fmt.Errorf("empty key in %q", trimmed)
	}

	value = strings.TrimSpace(v)
	if strings.HasPrefix(value, "\"") {
		if end := strings.Index(value[1:], "\""); end >= 0 {
			return key, value[1 : end+1], true, nil
		}
	}
	if idx := strings.Index(value, " #"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}

	return key, value, true, nil
}
