package frame

import (
	"errors"
	"fmt"
)

// ErrFieldCount indicates a numeric line that does not carry exactly
// FieldCount values. The read loop skips such lines.
var ErrFieldCount = errors.New("frame: wrong number of fields")

// NumberError reports a token that could not be converted to a real number.
type NumberError struct {
	Index   int
	Token   string
	Wrapped error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("frame: field %d (%s): invalid number %q", e.Index, FieldName(e.Index), e.Token)
}

func (e *NumberError) Unwrap() error {
	return e.Wrapped
}
