package format

import (
	"errors"
	"fmt"
)

// ErrUnimplemented indicates a format variant with no rendering rule.
// Match with errors.Is; the concrete *UnimplementedError carries the
// variant.
var ErrUnimplemented = errors.New("format not implemented")

// UnimplementedError is returned when rendering is attempted with a
// format variant that has no rendering rule.
type UnimplementedError struct {
	// Format is the variant that was attempted.
	Format Format
}

// Error implements the error interface.
func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("format %s is not implemented", e.Format)
}

// Is implements error matching for UnimplementedError.
func (e *UnimplementedError) Is(target error) bool {
	return target == ErrUnimplemented
}
