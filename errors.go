package rgbkmeans

import (
	"errors"
	"fmt"

	"github.com/hupe1980/rgbkmeans/internal/kmeans"
)

var (
	// ErrInvalidArgument is matched by every argument validation error.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ArgumentError reports a scalar argument outside its valid range.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ArgumentError struct {
	Name  string
	Value int
	cause error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %d", e.Name, e.Value)
}

func (e *ArgumentError) Unwrap() error { return e.cause }

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// BufferSizeError reports a caller buffer whose length does not match the
// shape implied by the other arguments.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type BufferSizeError struct {
	Buffer   string
	Expected int
	Actual   int
	cause    error
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("invalid argument: %s buffer has length %d, expected %d", e.Buffer, e.Actual, e.Expected)
}

func (e *BufferSizeError) Unwrap() error { return e.cause }

// Is reports whether target is ErrInvalidArgument.
func (e *BufferSizeError) Is(target error) bool { return target == ErrInvalidArgument }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ae *kmeans.ArgumentError
	if errors.As(err, &ae) {
		return &ArgumentError{Name: ae.Name, Value: ae.Value, cause: err}
	}
	var be *kmeans.BufferSizeError
	if errors.As(err, &be) {
		return &BufferSizeError{Buffer: be.Buffer, Expected: be.Expected, Actual: be.Actual, cause: err}
	}
	if errors.Is(err, kmeans.ErrInvalidArgument) {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
