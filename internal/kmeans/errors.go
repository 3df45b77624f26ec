package kmeans

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every validation error of this package.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a scalar argument outside its valid range.
type ArgumentError struct {
	Name  string
	Value int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("kmeans: invalid %s: %d", e.Name, e.Value)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// BufferSizeError reports a caller buffer whose length does not match the
// shape implied by the other arguments.
type BufferSizeError struct {
	Buffer   string
	Expected int
	Actual   int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("kmeans: %s buffer has length %d, expected %d", e.Buffer, e.Actual, e.Expected)
}

// Is reports whether target is ErrInvalidArgument.
func (e *BufferSizeError) Is(target error) bool { return target == ErrInvalidArgument }
