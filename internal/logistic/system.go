package logistic

import (
	"fmt"

	"github.com/jsperk/chaoslab/internal/dynamo"
)

// System adapts the discrete map to the tick-driven clock. Derive
// returns the per-generation increment, so a single Euler application
// with dt=1 reproduces the recurrence exactly; anything else is not a
// meaningful discretization, which is why the system insists on Euler.
type System struct {
	Model
}

func NewSystem(r, k, p0 float64) (*System, error) {
	m, err := New(r, k, p0)
	if err != nil {
		return nil, err
	}
	return &System{Model: *m}, nil
}

func (s *System) StateDim() int { return 1 }

func (s *System) Derive(x dynamo.State, _ float64) dynamo.State {
	return dynamo.State{Next(x[0], s.R, s.K) - x[0]}
}

func (s *System) DefaultState() dynamo.State { return dynamo.State{s.P0} }

func (s *System) PreferredStepper() string { return "euler" }

func (s *System) GetParams() map[string]float64 {
	return map[string]float64{"r": s.R, "k": s.K}
}

func (s *System) SetParam(name string, v float64) error {
	switch name {
	case "r":
		s.R = v
	case "k":
		if v <= 0 {
			return fmt.Errorf("%w: got %v", dynamo.ErrCarryingCapacity, v)
		}
		s.K = v
	default:
		return fmt.Errorf("%w: %s", dynamo.ErrUnknownParam, name)
	}
	return nil
}
