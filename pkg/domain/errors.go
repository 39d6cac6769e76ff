package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidDirection is returned when a token does not start with a known direction marker.
var ErrInvalidDirection = errors.New("invalid direction")

// ErrInvalidMagnitude is returned when the step count is not a representable non-negative integer.
var ErrInvalidMagnitude = errors.New("invalid magnitude")

// ErrInvalidPerimeter is returned when a dial is built with a non-positive or oversized perimeter.
var ErrInvalidPerimeter = errors.New("invalid perimeter")

// ErrInvalidStart is returned when the starting position lies outside [0, perimeter).
var ErrInvalidStart = errors.New("invalid start position")

// ParseError describes a token that could not be turned into a Command.
// It unwraps to ErrInvalidDirection or ErrInvalidMagnitude.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
