// Package apperr defines the error taxonomy surfaced by notetool and maps each
// kind to a process exit code.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a terminal error.
type Kind string

const (
	KindUnknown             Kind = "Unknown"
	KindMissingArgument     Kind = "MissingArgument"
	KindInvalidArgument     Kind = "InvalidArgument"
	KindEnvironment         Kind = "EnvironmentError"
	KindDuplicate           Kind = "DuplicateError"
	KindIO                  Kind = "IOError"
	KindUnsupportedPlatform Kind = "UnsupportedPlatform"
	KindLaunch              Kind = "LaunchError"
	KindLaunchExhausted     Kind = "LaunchExhausted"
	KindConfig              Kind = "ConfigError"
)

// Error is a classified error. Msg is the user-facing text; Err, when set, is
// the underlying cause and is appended to the message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so callers can
// write errors.Is(err, &apperr.Error{Kind: apperr.KindDuplicate}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == "" && t.Err == nil
}

// New returns an *Error of kind k with a formatted message.
func New(k Kind, format string, a ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, a...)}
}

// Wrap returns an *Error of kind k wrapping err.
func Wrap(k Kind, err error, format string, a ...any) *Error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, a...), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Of returns a sentinel usable with errors.Is to test for kind k.
func Of(k Kind) error { return &Error{Kind: k} }

// ExitCode maps err to a process exit status. Every failure is terminal and
// exits 1; nil exits 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
