package digest

import (
	"errors"
	"fmt"
)

// invalidInputsError is returned when a constructor receives parameters it
// cannot work with: unsupported output lengths, non-positive counts,
// unknown algorithms.
type invalidInputsError struct {
	error
}

func (e invalidInputsError) Unwrap() error {
	return e.error
}

// InvalidInputsErrorf builds an invalid inputs error. The format follows
// fmt.Errorf, including %w.
func InvalidInputsErrorf(msg string, args ...interface{}) error {
	return invalidInputsError{
		error: fmt.Errorf(msg, args...),
	}
}

// IsInvalidInputsError checks if the input error is of an invalidInputsError type.
func IsInvalidInputsError(err error) bool {
	var target invalidInputsError
	return errors.As(err, &target)
}

// outOfRangeError is returned when an offset/length pair does not fit the
// slice it refers to.
type outOfRangeError struct {
	error
}

func (e outOfRangeError) Unwrap() error {
	return e.error
}

// OutOfRangeErrorf builds an out of range error.
func OutOfRangeErrorf(msg string, args ...interface{}) error {
	return outOfRangeError{
		error: fmt.Errorf(msg, args...),
	}
}

// IsOutOfRangeError checks if the input error is of an outOfRangeError type.
func IsOutOfRangeError(err error) bool {
	var target outOfRangeError
	return errors.As(err, &target)
}
