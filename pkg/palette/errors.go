package palette

import (
	"errors"
	"fmt"
)

// ErrInvalidPrimaryColor is the single failure kind of palette generation.
var ErrInvalidPrimaryColor = errors.New("palette: invalid primary color")

// InvalidPrimaryColorError carries the rejected value. It matches
// ErrInvalidPrimaryColor through errors.Is.
type InvalidPrimaryColorError struct {
	Value  string
	Reason string
}

func (e *InvalidPrimaryColorError) Error() string {
	if e == nil {
		return ErrInvalidPrimaryColor.Error()
	}
	if e.Reason == "" {
		return fmt.Sprintf("%s %q", ErrInvalidPrimaryColor, e.Value)
	}
	return fmt.Sprintf("%s %q: %s", ErrInvalidPrimaryColor, e.Value, e.Reason)
}

func (e *InvalidPrimaryColorError) Is(target error) bool {
	return target == ErrInvalidPrimaryColor
}
