package usage

import "fmt"

// InvalidFlag is returned when a flag is not valid in the current context.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("navi: invalid flag '%s'", flag),
	}
}

// InvalidFinder is returned for an unknown --finder value.
func InvalidFinder(name string) *Error {
	return &Error{
		Kind:    ErrInvalidFinder,
		Message: fmt.Sprintf("navi: invalid finder '%s' (expected fzf, skim or builtin)", name),
	}
}
