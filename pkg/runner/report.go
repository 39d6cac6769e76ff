package runner

import (
	"fmt"

	"github.com/aretw0/dial/pkg/domain"
)

// Report aggregates the results of a simulation run.
type Report struct {
	Perimeter     int `json:"perimeter"`
	Start         int `json:"start"`
	Commands      int `json:"commands"`
	ZeroLandings  int `json:"zero_landings"`
	Crossings     int `json:"crossings"`
	FinalPosition int `json:"final_position"`
}

// NewReport creates an empty report for a dial in its current position.
func NewReport(d *domain.Dial) *Report {
	return &Report{
		Perimeter:     d.Perimeter(),
		Start:         d.Position(),
		FinalPosition: d.Position(),
	}
}

// Record folds one step into the totals.
func (r *Report) Record(step domain.Step) {
	r.Commands++
	r.Crossings += step.Crossings
	if step.Landed() {
		r.ZeroLandings++
	}
	r.FinalPosition = step.Position
}

// LineError reports a failure tied to a specific input line (1-based).
type LineError struct {
	Line  int
	Token string
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
