package domain

import (
	"fmt"
	"math"
)

// MaxPerimeter is the largest supported number of positions on a dial.
const MaxPerimeter = math.MaxInt32

// Step is the outcome of applying one Command to a Dial.
type Step struct {
	Command   Command `json:"command"`
	From      int     `json:"from"`
	Position  int     `json:"position"`
	Crossings int     `json:"crossings"`
}

// Landed reports whether the step came to rest exactly on zero.
func (s Step) Landed() bool {
	return s.Position == 0
}

// Dial is a circular dial with positions 0..perimeter-1.
// A Dial is not safe for concurrent use; each run owns its own.
type Dial struct {
	perimeter int
	position  int
}

// NewDial creates a dial with the given perimeter and starting position.
func NewDial(perimeter, start int) (*Dial, error) {
	if perimeter <= 0 || perimeter > MaxPerimeter {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPerimeter, perimeter)
	}
	if start < 0 || start >= perimeter {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidStart, start, perimeter)
	}
	return &Dial{perimeter: perimeter, position: start}, nil
}

// Perimeter returns the number of positions on the dial.
func (d *Dial) Perimeter() int {
	return d.perimeter
}

// Position returns the current pointer position.
func (d *Dial) Position() int {
	return d.position
}

// Peek computes the Step that Apply would produce without moving the pointer.
func (d *Dial) Peek(cmd Command) Step {
	return Step{
		Command:   cmd,
		From:      d.position,
		Position:  Rotate(d.perimeter, d.position, cmd),
		Crossings: CountCrossings(d.perimeter, d.position, cmd),
	}
}

// Apply rotates the dial by cmd and returns the resulting Step.
func (d *Dial) Apply(cmd Command) Step {
	step := d.Peek(cmd)
	d.position = step.Position
	return step
}

// Rotate returns the position reached from start after cmd on a dial of the given perimeter.
// The result is always in [0, perimeter), including for negative intermediate sums.
func Rotate(perimeter, start int, cmd Command) int {
	p := int64(perimeter)
	return int(((int64(start)+cmd.Delta())%p + p) % p)
}

// CountCrossings returns how many times the pointer occupies zero while moving
// cmd.Magnitude steps from start, counting the final resting position.
//
// Every full lap visits zero once. The leftover residual reaches zero only if
// it covers the distance to zero in the direction of travel; standing on zero
// counts as a full perimeter away.
func CountCrossings(perimeter, start int, cmd Command) int {
	laps := cmd.Magnitude / perimeter
	residual := cmd.Magnitude % perimeter
	if residual >= distanceToZero(perimeter, start, cmd.Direction) {
		laps++
	}
	return laps
}

func distanceToZero(perimeter, start int, dir Direction) int {
	switch {
	case start == 0:
		return perimeter
	case dir == Forward:
		return perimeter - start
	default:
		return start
	}
}
