package types

import (
	"errors"
	"fmt"
)

// ErrUnsupported is matched by errors returned for operations that a type
// kind does not support.
var ErrUnsupported = errors.New("unsupported operation")

// UnsupportedError reports an operation requested on a kind that does not
// support it, such as the supertypes of void.
type UnsupportedError struct {
	Op   string
	Kind Kind
}

// Error implements the error interface.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %v on %s type", e.Op, ErrUnsupported, e.Kind)
}

// Unwrap returns ErrUnsupported.
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}
