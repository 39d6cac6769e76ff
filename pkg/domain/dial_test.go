package domain_test

import (
	"fmt"
	"testing"

	"github.com/aretw0/dial/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func left(n int) domain.Command  { return domain.Command{Direction: domain.Backward, Magnitude: n} }
func right(n int) domain.Command { return domain.Command{Direction: domain.Forward, Magnitude: n} }

func newDial(t *testing.T, perimeter, start int) *domain.Dial {
	t.Helper()
	d, err := domain.NewDial(perimeter, start)
	require.NoError(t, err)
	return d
}

func TestNewDial_Validation(t *testing.T) {
	_, err := domain.NewDial(0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPerimeter)

	_, err = domain.NewDial(-5, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPerimeter)

	_, err = domain.NewDial(100, 100)
	assert.ErrorIs(t, err, domain.ErrInvalidStart)

	_, err = domain.NewDial(100, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidStart)

	d, err := domain.NewDial(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Perimeter())
	assert.Equal(t, 0, d.Position())
}

func TestDial_Apply_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		start         int
		cmd           domain.Command
		wantPosition  int
		wantCrossings int
	}{
		{"forward onto zero", 50, right(50), 0, 1},
		{"forward one and a half laps", 50, right(150), 0, 2},
		{"backward onto zero", 50, left(50), 0, 1},
		{"backward multi-lap from zero", 0, left(305), 95, 3},
		{"forward short of zero", 50, right(25), 75, 0},
		{"forward exact lap", 50, right(100), 50, 1},
		{"forward past zero", 50, right(75), 25, 1},
		{"forward lap and past zero", 50, right(175), 25, 2},
		{"backward lap and a half", 50, left(150), 0, 2},
		{"backward past zero", 50, left(75), 75, 1},
		{"backward lap onto zero", 10, left(110), 0, 2},
		{"backward two laps past zero", 10, left(215), 95, 3},
		{"backward short of zero", 76, left(46), 30, 0},
		{"forward from zero under a lap", 0, right(99), 99, 0},
		{"forward from zero exact lap", 0, right(100), 0, 1},
		{"zero magnitude at zero", 0, right(0), 0, 0},
		{"zero magnitude elsewhere", 42, left(0), 42, 0},
		{"exact laps from nonzero start", 30, left(300), 30, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDial(t, 100, tt.start)
			step := d.Apply(tt.cmd)

			assert.Equal(t, tt.start, step.From)
			assert.Equal(t, tt.wantPosition, step.Position, "position")
			assert.Equal(t, tt.wantCrossings, step.Crossings, "crossings")
			assert.Equal(t, tt.wantPosition, d.Position())
			assert.Equal(t, tt.cmd, step.Command)
		})
	}
}

func TestDial_Apply_Sequence(t *testing.T) {
	d := newDial(t, 100, 50)
	for _, tc := range []struct {
		cmd  domain.Command
		want int
	}{
		{left(68), 82},
		{left(30), 52},
		{right(48), 0},
	} {
		step := d.Apply(tc.cmd)
		assert.Equal(t, tc.want, step.Position, tc.cmd.String())
	}
	assert.Equal(t, 0, d.Position())
}

func TestDial_Apply_ThroughZeroThenLeave(t *testing.T) {
	d := newDial(t, 100, 10)

	step := d.Apply(right(90))
	assert.Equal(t, 0, step.Position)
	assert.Equal(t, 1, step.Crossings)
	assert.True(t, step.Landed())

	// Leaving zero is not a crossing; only a full lap back would be.
	step = d.Apply(right(10))
	assert.Equal(t, 10, step.Position)
	assert.Equal(t, 0, step.Crossings)
	assert.False(t, step.Landed())
}

func TestDial_Peek_DoesNotMove(t *testing.T) {
	d := newDial(t, 100, 50)
	step := d.Peek(right(50))
	assert.Equal(t, 0, step.Position)
	assert.Equal(t, 50, d.Position())
}

func TestDial_LargeMagnitude(t *testing.T) {
	d := newDial(t, domain.MaxPerimeter, domain.MaxPerimeter-1)
	step := d.Apply(right(domain.MaxMagnitude))
	assert.Equal(t, domain.MaxPerimeter-1, step.Position)
	assert.Equal(t, 1, step.Crossings)

	d = newDial(t, 100, 0)
	step = d.Apply(left(domain.MaxMagnitude))
	assert.Equal(t, domain.Rotate(100, 0, left(domain.MaxMagnitude)), step.Position)
	assert.Equal(t, domain.MaxMagnitude/100, step.Crossings)
}

// walk moves one position at a time and counts every visit to zero.
func walk(perimeter, start int, cmd domain.Command) (int, int) {
	pos, hits := start, 0
	for i := 0; i < cmd.Magnitude; i++ {
		pos = (pos + cmd.Direction.Sign() + perimeter) % perimeter
		if pos == 0 {
			hits++
		}
	}
	return pos, hits
}

func TestDial_MatchesUnitWalk(t *testing.T) {
	for p := 1; p <= 12; p++ {
		for s := 0; s < p; s++ {
			for m := 0; m <= 3*p+1; m++ {
				for _, cmd := range []domain.Command{left(m), right(m)} {
					wantPos, wantHits := walk(p, s, cmd)
					name := fmt.Sprintf("P=%d s=%d %s", p, s, cmd)
					assert.Equal(t, wantPos, domain.Rotate(p, s, cmd), name)
					assert.Equal(t, wantHits, domain.CountCrossings(p, s, cmd), name)
				}
			}
		}
	}
}

func TestDial_Properties(t *testing.T) {
	for _, p := range []int{1, 2, 7, 100} {
		for s := 0; s < p; s++ {
			// Full laps return home with one crossing each.
			for k := 1; k <= 3; k++ {
				d := newDial(t, p, s)
				step := d.Apply(right(k * p))
				assert.Equal(t, s, step.Position)
				assert.Equal(t, k, step.Crossings)
			}

			// Forward then backward by the same amount is a round trip.
			for _, m := range []int{1, p / 2, p, 2*p + 3} {
				d := newDial(t, p, s)
				d.Apply(right(m))
				d.Apply(left(m))
				assert.Equal(t, s, d.Position(), "P=%d s=%d m=%d", p, s, m)
			}
		}

		// From zero nothing short of a lap reaches zero again.
		for m := 1; m < p; m++ {
			assert.Equal(t, 0, domain.CountCrossings(p, 0, right(m)))
			assert.Equal(t, 0, domain.CountCrossings(p, 0, left(m)))
		}
		assert.Equal(t, 1, domain.CountCrossings(p, 0, right(p)))
	}
}
