package physics

import (
	"math"
	"testing"

	"github.com/jsperk/chaoslab/internal/dynamo"
	"github.com/jsperk/chaoslab/internal/integrators"
)

func TestLorenzDerive(t *testing.T) {
	sys := NewLorenz()

	d := sys.Derive(dynamo.State{1, 1, 1}, 0)

	// sigma*(y-x)=0, x*(rho-z)-y=26, x*y-beta*z=1-8/3
	if d[0] != 0 {
		t.Errorf("dx = %v, want 0", d[0])
	}
	if d[1] != 26 {
		t.Errorf("dy = %v, want 26", d[1])
	}
	if math.Abs(d[2]-(1-8.0/3.0)) > 1e-12 {
		t.Errorf("dz = %v, want %v", d[2], 1-8.0/3.0)
	}
}

func TestLorenzAttractorEnvelope(t *testing.T) {
	sys := NewLorenz()
	integ := integrators.NewEuler()

	x := sys.DefaultState()
	dt := 0.01

	var prev dynamo.State
	minDist := math.Inf(1)

	for i := 0; i < 10000; i++ {
		next := integ.Step(sys, x, float64(i)*dt, dt)

		if !next.IsValid() {
			t.Fatalf("non-finite state at step %d: %v", i, next)
		}
		if math.Abs(next[0]) >= 30 || math.Abs(next[1]) >= 30 || math.Abs(next[2]) >= 60 {
			t.Fatalf("left attractor envelope at step %d: %v", i, next)
		}

		// Skip the initial approach to the attractor before checking
		// that the orbit never closes.
		if i > 100 && prev != nil {
			if d := next.Sub(prev).Norm(); d < minDist {
				minDist = d
			}
			if d := next.Sub(x).Norm(); d == 0 {
				t.Fatalf("exact repeat at step %d", i)
			}
		}
		prev = x
		x = next
	}

	if minDist == 0 {
		t.Error("trajectory revisited a point exactly; expected aperiodic orbit")
	}
}

func TestLorenzSetParam(t *testing.T) {
	sys := NewLorenz()

	if err := sys.SetParam("rho", 14.0); err != nil {
		t.Fatalf("SetParam failed: %v", err)
	}
	if sys.Rho != 14.0 {
		t.Errorf("rho = %v, want 14", sys.Rho)
	}
	if err := sys.SetParam("mass", 1.0); err == nil {
		t.Error("expected error for unknown parameter")
	}
}
