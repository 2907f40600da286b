package main

import "fmt"

// Exit codes for the neurogen CLI.
const (
	ExitOK            = 0 // Success.
	ExitInvalidArgs   = 1 // Invalid flags, scenario, or config.
	ExitRenderFailure = 2 // Output could not be rendered or written.
	ExitInternal      = 3 // Data integrity or other internal error.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
	err  error
}

func (e *exitCodeError) Error() string { return e.msg }

// Unwrap exposes the underlying error, if any, to errors.Is.
func (e *exitCodeError) Unwrap() error { return e.err }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code. A trailing error argument is
// kept for unwrapping.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitRenderFailure:
			msg = "neurogen: rendering failed"
		case ExitInternal:
			msg = "neurogen: internal error"
		default:
			msg = fmt.Sprintf("neurogen: exit code %d", code)
		}
	}
	var wrapped error
	if n := len(args); n > 0 {
		wrapped, _ = args[n-1].(error)
	}
	return &exitCodeError{code: code, msg: msg, err: wrapped}
}
