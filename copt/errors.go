package copt

import (
	"errors"
	"fmt"

	"github.com/bartolsthoorn/gocopt/internal/native"
)

var (
	// ErrInvalidName is returned when a name or setting contains a NUL byte.
	ErrInvalidName = errors.New("copt: name contains a NUL byte")
	// ErrDimensionMismatch is returned when parallel slices differ in length.
	ErrDimensionMismatch = errors.New("copt: dimension mismatch")
	// ErrUnsupportedFormat is returned for file names with an unknown suffix.
	ErrUnsupportedFormat = errors.New("copt: unsupported file format")
	// ErrDivisionByZero is returned when dividing an expression by zero.
	ErrDivisionByZero = errors.New("copt: division by zero")
	// ErrClosed is returned when using a closed model or environment.
	ErrClosed = errors.New("copt: use of closed handle")
	// ErrNotBuilt is returned when the package was built without the native library.
	ErrNotBuilt = errors.New("copt: built without the native library (need cgo and the copt build tag)")
)

// Error represents a failed native call, or a failed validation that the
// native layer would have rejected, with the operation that caused it.
type Error struct {
	Op   string // Operation that failed (e.g., "AddVar", "Optimize")
	Code int    // Native return code, 0 for failures detected before any native call
	Msg  string // Additional context
	Err  error  // Underlying sentinel, if any
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "":
		return fmt.Sprintf("copt: %s failed: %s", e.Op, e.Msg)
	case e.Err != nil && e.Code != 0:
		return fmt.Sprintf("copt: %s failed with code %d: %v", e.Op, e.Code, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("copt: %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("copt: %s failed with code %d (%s)", e.Op, e.Code, native.Retcode(e.Code))
}

func (e *Error) Unwrap() error { return e.Err }

// Code extracts the native return code from err. It returns 0 when err does
// not carry one.
func Code(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

// newError creates a new Error if code is not OK.
func newError(op string, code native.Retcode) error {
	if code == native.OK {
		return nil
	}
	return &Error{Op: op, Code: int(code)}
}

func wrapError(op string, code native.Retcode, err error) error {
	return &Error{Op: op, Code: int(code), Err: err}
}

func newErrorMsg(op, msg string) error {
	return &Error{Op: op, Msg: msg}
}

// invalidArg reports an argument the native layer would reject.
func invalidArg(op, msg string) error {
	return &Error{Op: op, Code: int(native.Invalid), Msg: msg}
}
