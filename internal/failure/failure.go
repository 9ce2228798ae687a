// Package failure layers human-readable context onto errors.
//
// A wrapped error keeps its cause reachable through errors.Is and errors.As.
// Chain walks the layers outermost first and ends with the root cause, which is
// the order the runner prints them in.
package failure

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Error is one context layer on top of a cause.
type Error struct {
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Context
	}
	return e.Context + ": " + e.Cause.Error()
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Wrap adds msg as a context layer on err. A nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Context: msg, Cause: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Context: fmt.Sprintf(format, args...), Cause: err}
}

// Context returns the outermost context message when err is a context layer.
func Context(err error) (string, bool) {
	e, ok := err.(*Error)
	if !ok {
		return "", false
	}
	return e.Context, true
}

// Chain yields one message per layer, outermost first, root cause last.
//
// Layers built with fmt.Errorf("...: %w") are reported with the wrapped text
// stripped so every message appears once.
func Chain(err error) iter.Seq[string] {
	return func(yield func(string) bool) {
		for err != nil {
			next := errors.Unwrap(err)
			if !yield(layerMessage(err, next)) {
				return
			}
			err = next
		}
	}
}

// Messages collects Chain into a slice.
func Messages(err error) []string {
	var out []string
	for msg := range Chain(err) {
		out = append(out, msg)
	}
	return out
}

// Root returns the innermost error of the chain.
func Root(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

func layerMessage(err, next error) string {
	if e, ok := err.(*Error); ok {
		return e.Context
	}
	msg := err.Error()
	if next == nil {
		return msg
	}
	inner := next.Error()
	if trimmed, ok := strings.CutSuffix(msg, inner); ok {
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), ":")
		if trimmed != "" {
			return trimmed
		}
	}
	return msg
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
