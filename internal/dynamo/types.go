package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

// System is an autonomous ODE system dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
	DefaultState() State
}

// Stepper advances a system by one fixed time step.
type Stepper interface {
	Step(sys System, x State, t float64, dt float64) State
}

// Configurable systems expose named parameters that may be reassigned
// between steps. A change is visible at the very next step.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Constrained systems project each stepped state back into their
// admissible region (e.g. non-negative concentrations).
type Constrained interface {
	Constrain(x State) State
}
