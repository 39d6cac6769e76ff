package domain

import (
	"fmt"
	"math"
	"strconv"
)

// MaxMagnitude is the largest step count a Command may carry.
// Together with MaxPerimeter it keeps start+delta well inside int64.
const MaxMagnitude = math.MaxInt32

// Command is a single parsed rotation.
type Command struct {
	Direction Direction `json:"direction"`
	Magnitude int       `json:"magnitude"`
}

// ParseCommand converts a token of the form <D><N> (e.g. "L68") into a Command.
// D must be "L" or "R"; N must be a non-negative decimal integer no larger than MaxMagnitude.
func ParseCommand(token string) (Command, error) {
	if token == "" {
		return Command{}, &ParseError{Token: token, Err: ErrInvalidDirection}
	}

	dir, err := ParseDirection(token[:1])
	if err != nil {
		return Command{}, &ParseError{Token: token, Err: ErrInvalidDirection}
	}

	// ParseUint rejects signs, so "-5" and "+5" are both invalid here.
	n, err := strconv.ParseUint(token[1:], 10, 64)
	if err != nil || n > MaxMagnitude {
		return Command{}, &ParseError{Token: token, Err: ErrInvalidMagnitude}
	}

	return Command{Direction: dir, Magnitude: int(n)}, nil
}

// String renders the canonical token form.
func (c Command) String() string {
	return fmt.Sprintf("%s%d", c.Direction, c.Magnitude)
}

// Delta returns the signed raw movement (direction * magnitude).
func (c Command) Delta() int64 {
	return int64(c.Direction.Sign()) * int64(c.Magnitude)
}
