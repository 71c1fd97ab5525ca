package physics

import (
	"fmt"
	"math"

	"github.com/jsperk/chaoslab/internal/dynamo"
)

// Brusselator implements the two-species autocatalytic oscillator
//
//	dX/dt = k1*A - k2*B*X + k3*X^2*Y - k4*X
//	dY/dt = k2*B*X - k3*X^2*Y
//
// X and Y are concentrations, so each step is projected back onto the
// non-negative orthant via Constrain.
type Brusselator struct {
	A, B           float64
	K1, K2, K3, K4 float64
}

func NewBrusselator() *Brusselator {
	return &Brusselator{A: 1.0, B: 3.0, K1: 1.0, K2: 1.0, K3: 1.0, K4: 1.0}
}

func (b *Brusselator) StateDim() int { return 2 }

func (b *Brusselator) Derive(s dynamo.State, _ float64) dynamo.State {
	x, y := s[0], s[1]
	auto := b.K3 * x * x * y
	return dynamo.State{
		b.K1*b.A - b.K2*b.B*x + auto - b.K4*x,
		b.K2*b.B*x - auto,
	}
}

func (b *Brusselator) DefaultState() dynamo.State { return dynamo.State{1.0, 1.0} }

func (b *Brusselator) PreferredStepper() string { return "rk4" }

// Constrain clamps concentrations at zero. Negative intermediate values
// would otherwise feed back through the X^2*Y term and produce
// nonphysical trajectories.
func (b *Brusselator) Constrain(s dynamo.State) dynamo.State {
	result := make(dynamo.State, len(s))
	for i, v := range s {
		result[i] = math.Max(0, v)
	}
	return result
}

func (b *Brusselator) GetParams() map[string]float64 {
	return map[string]float64{
		"a": b.A, "b": b.B,
		"k1": b.K1, "k2": b.K2, "k3": b.K3, "k4": b.K4,
	}
}

func (b *Brusselator) SetParam(name string, v float64) error {
	switch name {
	case "a":
		b.A = v
	case "b":
		b.B = v
	case "k1":
		b.K1 = v
	case "k2":
		b.K2 = v
	case "k3":
		b.K3 = v
	case "k4":
		b.K4 = v
	default:
		return fmt.Errorf("%w: %s", dynamo.ErrUnknownParam, name)
	}
	return nil
}
