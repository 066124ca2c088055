package yomi

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned (wrapped in a *RangeError) when a field value lies
// outside the domain its renderer accepts.
var ErrOutOfRange = errors.New("value out of range")

// RangeError describes a field value that cannot be rendered
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d outside %d..%d", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// checkRange returns a *RangeError when v is not within [lo, hi]
func checkRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &RangeError{Field: field, Value: v, Min: lo, Max: hi}
	}
	return nil
}
