package errors

import "fmt"

// Type categorizes scan failures. Only setup failures abort a scan; path
// and commit failures are recovered locally by skipping the input.
type Type int

const (
	// TypeSetup - repository not openable or caller configuration invalid.
	// Always fatal, surfaced before any scoring begins.
	TypeSetup Type = iota
	// TypePath - attribution unavailable for one file (binary, deleted,
	// unreadable). The file is skipped; the scan continues.
	TypePath
	// TypeCommit - a commit, its parent tree, or its diff could not be
	// resolved. The commit is skipped; the walk continues.
	TypeCommit
)

// Error is a categorized scan error with an optional wrapped cause and the
// input (path, commit hash, flag value) that produced it.
type Error struct {
	Type    Type
	Message string
	Input   string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Input != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Input)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches errors of the same Type.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// IsFatal reports whether the error must abort the scan.
func (e *Error) IsFatal() bool {
	return e.Type == TypeSetup
}

// Setup creates a fatal setup error naming the offending input.
func Setup(message, input string) *Error {
	return &Error{Type: TypeSetup, Message: message, Input: input}
}

// WrapSetup wraps a cause as a fatal setup error.
func WrapSetup(err error, message, input string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Type: TypeSetup, Message: message, Input: input, Cause: err}
}

// Path creates a recoverable per-path error.
func Path(err error, path string) *Error {
	return &Error{Type: TypePath, Message: "attribution unavailable", Input: path, Cause: err}
}

// Commit creates a recoverable per-commit error.
func Commit(err error, hash string) *Error {
	return &Error{Type: TypeCommit, Message: "commit unresolvable", Input: hash, Cause: err}
}
