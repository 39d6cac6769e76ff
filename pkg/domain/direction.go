package domain

import "fmt"

// Direction is the sense of a rotation. Its value is the signed unit multiplier.
type Direction int

const (
	Backward Direction = -1 // "L", towards lower numbers
	Forward  Direction = 1  // "R", towards higher numbers
)

// ParseDirection maps a direction marker ("L" or "R") to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "L":
		return Backward, nil
	case "R":
		return Forward, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Sign returns -1 for Backward and +1 for Forward.
func (d Direction) Sign() int {
	return int(d)
}

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == Backward || d == Forward
}

func (d Direction) String() string {
	switch d {
	case Backward:
		return "L"
	case Forward:
		return "R"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MarshalText encodes the direction as its marker.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText decodes a direction marker.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
