package dispatchers

import (
	"slices"
	"strings"
)

// ParsedFlags gives typed access to the flags of one command line.
// Values are always written as --name=value.
type ParsedFlags struct {
	raw []string
}

func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

func (f *ParsedFlags) Raw() []string {
	return f.raw
}

// Has reports whether a boolean flag is present.
func (f *ParsedFlags) Has(name string) bool {
	return slices.Contains(f.raw, name)
}

// String returns the value of the last --name=value, or defaultVal.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	value := defaultVal
	for _, flag := range f.raw {
		if v, ok := strings.CutPrefix(flag, prefix); ok {
			value = v
		}
	}
	return value
}

// Lookup is String that also reports whether the flag was given.
func (f *ParsedFlags) Lookup(name string) (string, bool) {
	const unset = "\x00"
	v := f.String(name, unset)
	if v == unset {
		return "", false
	}
	return v, true
}
