package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned for a token that names no command. Suggestions,
// if any, are listed git-style.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("navi: '%s' is not a navi command. See 'navi --help'.", command)
	if len(suggestions) == 1 {
		msg += "\n\nThe most similar command is\n\t" + suggestions[0]
	} else if len(suggestions) > 1 {
		msg += "\n\nThe most similar commands are\n\t" + strings.Join(suggestions, "\n\t")
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}

// InvalidConfigKey is returned by `navi config` for keys navi does not know.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("navi: unknown config key '%s'. See 'navi config list'.", key),
	}
}
