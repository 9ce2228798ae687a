package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidFinder
	ErrInvalidConfigKey
)

// Exit codes:
//
//	Exit 1: environment errors (unknown, unknown command, invalid config key)
//	Exit 2: user input errors (invalid flag, missing argument, invalid finder)
var exitCodes = map[ErrorKind]int{
	ErrUnknown:          1,
	ErrInvalidFlag:      2,
	ErrMissingArgument:  2,
	ErrUnknownCommand:   1,
	ErrInvalidFinder:    2,
	ErrInvalidConfigKey: 1,
}

// Error is a user-facing command line error.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the process exit code for this error's kind.
func (e *Error) GetExitCode() int {
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
