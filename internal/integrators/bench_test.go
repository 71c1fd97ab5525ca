package integrators

import (
	"testing"

	"github.com/jsperk/chaoslab/internal/dynamo"
	"github.com/jsperk/chaoslab/internal/logistic"
	"github.com/jsperk/chaoslab/internal/physics"
)

func BenchmarkEulerLorenz(b *testing.B) {
	integ := NewEuler()
	sys := physics.NewLorenz()
	x := sys.DefaultState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(sys, x, 0, 0.01)
	}
	_ = x
}

func BenchmarkRK4Brusselator(b *testing.B) {
	integ := NewRK4()
	sys := physics.NewBrusselator()
	x := sys.DefaultState()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integ.Step(sys, x, 0, 0.01)
	}
	_ = x
}

func BenchmarkLogisticNext(b *testing.B) {
	p := 2.0
	for i := 0; i < b.N; i++ {
		p = logistic.Next(p, 3.8, 1000)
	}
	_ = p
}

var _ dynamo.Stepper = (*Euler)(nil)
var _ dynamo.Stepper = (*RK4)(nil)
