package chemkit

import (
	"errors"
	"fmt"
)

// Common detection errors
var (
	// ErrInvalidInput indicates a nil input stream was supplied.
	ErrInvalidInput = errors.New("input is nil")

	// ErrUnsupportedSource indicates the input cannot buffer the bounded
	// look-ahead the detector needs. Wrap the input with NewSource, or
	// supply a *bufio.Reader with a buffer of at least the header length.
	ErrUnsupportedSource = errors.New("source does not support bounded look-ahead")

	// ErrUndetermined indicates no rule or probe recognized the input.
	// It is a reportable classification outcome, not a fault.
	ErrUndetermined = errors.New("format undetermined")

	// ErrNotImplemented indicates the format was recognized but no reader
	// is registered for it.
	ErrNotImplemented = errors.New("no reader registered for format")
)

// DetectError records an error together with the operation and, when known,
// the format involved.
type DetectError struct {
	Op     string
	Format Format
	Err    error
}

// Error implements the error interface
func (e *DetectError) Error() string {
	if e.Format != FormatUndetermined {
		return fmt.Sprintf("chemkit: %s %s: %v", e.Op, e.Format, e.Err)
	}
	return fmt.Sprintf("chemkit: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *DetectError) Unwrap() error {
	return e.Err
}

// IsInvalidInput reports whether an error indicates a nil input stream
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnsupportedSource reports whether an error indicates an input without
// the look-ahead capability the detector requires
func IsUnsupportedSource(err error) bool {
	return errors.Is(err, ErrUnsupportedSource)
}

// IsUndetermined reports whether an error indicates that no format was
// recognized
func IsUndetermined(err error) bool {
	return errors.Is(err, ErrUndetermined)
}

// IsNotImplemented reports whether an error indicates a recognized format
// without a registered reader
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
