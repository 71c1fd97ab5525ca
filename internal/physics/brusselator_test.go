package physics

import (
	"testing"

	"github.com/jsperk/chaoslab/internal/dynamo"
	"github.com/jsperk/chaoslab/internal/integrators"
)

func TestBrusselatorDerive(t *testing.T) {
	sys := NewBrusselator()
	sys.A, sys.B = 2.0, 5.5

	d := sys.Derive(dynamo.State{1, 1}, 0)

	// dX = 2 - 5.5 + 1 - 1 = -3.5, dY = 5.5 - 1 = 4.5
	if d[0] != -3.5 {
		t.Errorf("dX = %v, want -3.5", d[0])
	}
	if d[1] != 4.5 {
		t.Errorf("dY = %v, want 4.5", d[1])
	}
}

func TestBrusselatorZeroRates(t *testing.T) {
	sys := &Brusselator{}
	integ := integrators.NewRK4()

	x := dynamo.State{1.0, 1.0}
	next := sys.Constrain(integ.Step(sys, x, 0, 0.01))

	if next[0] != 1.0 || next[1] != 1.0 {
		t.Errorf("all-zero rates must leave state unchanged, got %v", next)
	}
}

func TestBrusselatorConstrain(t *testing.T) {
	sys := NewBrusselator()

	got := sys.Constrain(dynamo.State{-0.5, 2.0})
	if got[0] != 0 || got[1] != 2.0 {
		t.Errorf("Constrain(-0.5, 2.0) = %v, want (0, 2)", got)
	}

	got = sys.Constrain(dynamo.State{-1e-9, -3.0})
	for i, v := range got {
		if v < 0 {
			t.Errorf("component %d still negative after Constrain: %v", i, v)
		}
	}
}

func TestBrusselatorTrajectoryNonNegative(t *testing.T) {
	sys := NewBrusselator()
	sys.A, sys.B = 2.0, 5.5
	integ := integrators.NewRK4()

	x := sys.DefaultState()
	dt := 0.01

	for i := 0; i < 1000; i++ {
		x = sys.Constrain(integ.Step(sys, x, float64(i)*dt, dt))

		if !x.IsValid() {
			t.Fatalf("non-finite state at step %d: %v", i, x)
		}
		for j, v := range x {
			if v < 0 {
				t.Fatalf("negative concentration at step %d component %d: %v", i, j, v)
			}
		}
	}

	// The limit cycle for these parameters stays well inside this box.
	if x[0] > 50 || x[1] > 50 {
		t.Errorf("trajectory unexpectedly large: %v", x)
	}
}
