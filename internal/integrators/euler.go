package integrators

import "github.com/jsperk/chaoslab/internal/dynamo"

// Euler is the explicit first-order scheme. Cheap and good enough for
// trajectories that are consumed visually; it does not damp divergence.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamo.System, x dynamo.State, t float64, dt float64) dynamo.State {
	dx := sys.Derive(x, t)
	result := make(dynamo.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
