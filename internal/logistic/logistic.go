package logistic

import (
	"fmt"
	"math"

	"github.com/jsperk/chaoslab/internal/dynamo"
)

// Next applies one generation of the logistic map
//
//	P' = max(0, r*P*(1 - P/K))
//
// It is a raw primitive: K <= 0 makes the division non-finite and the
// resulting NaN/Inf propagates through every later generation. Callers
// that want the invariant enforced go through [New] or [Sweep].
func Next(p, r, k float64) float64 {
	return math.Max(0, r*p*(1-p/k))
}

// Model is a logistic recurrence with validated parameters.
type Model struct {
	R, K, P0 float64
}

func New(r, k, p0 float64) (*Model, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %v", dynamo.ErrCarryingCapacity, k)
	}
	return &Model{R: r, K: k, P0: p0}, nil
}

// Series returns the population for generations 0..years, index 0
// holding the initial population.
func (m *Model) Series(years int) []float64 {
	if years < 0 {
		years = 0
	}
	out := make([]float64, years+1)
	out[0] = m.P0
	p := m.P0
	for i := 1; i <= years; i++ {
		p = Next(p, m.R, m.K)
		out[i] = p
	}
	return out
}
