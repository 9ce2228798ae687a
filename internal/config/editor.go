package config

import "strings"

// Set replaces key's value in lines, keeping any inline comment, or appends
// key=value when the key is absent. The bool reports whether a line was replaced.
func Set(lines []string, key, value string) ([]string, bool) {
	if strings.Contains(value, " ") {
		value = "\"" + value + "\""
	}

	for i, line := range lines {
		k, _, ok, err := parseLine(line)
		if err != nil || !ok || k != key {
			continue
		}

		if idx := strings.Index(line, " #"); idx >= 0 && !strings.HasPrefix(strings.TrimSpace(line), "#") {
			lines[i] = key + "=" + value + " " + strings.TrimSpace(line[idx:])
		} else {
			lines[i] = key + "=" + value
		}
		return lines, true
	}

	return append(lines, key+"="+value), false
}

// Unset drops every line assigning key.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		k, _, ok, err := parseLine(line)
		if err == nil && ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
