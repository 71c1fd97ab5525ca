package logistic

import (
	"errors"
	"math"
	"testing"

	"github.com/jsperk/chaoslab/internal/dynamo"
)

func TestNextZeroPopulation(t *testing.T) {
	for _, r := range []float64{0, 0.5, 2.0, 3.8, 4.0} {
		if got := Next(0, r, 1000); got != 0 {
			t.Errorf("Next(0, %v, 1000) = %v, want 0", r, got)
		}
	}
}

func TestNextZeroGrowth(t *testing.T) {
	for _, p := range []float64{0, 2, 500, 999} {
		if got := Next(p, 0, 1000); got != 0 {
			t.Errorf("Next(%v, 0, 1000) = %v, want 0", p, got)
		}
	}
}

func TestNextNonNegative(t *testing.T) {
	// Populations above K would go negative without the clamp.
	if got := Next(1200, 2.0, 1000); got != 0 {
		t.Errorf("Next(1200, 2, 1000) = %v, want 0", got)
	}
}

func TestNextPropagatesBadCapacity(t *testing.T) {
	// The raw primitive is deliberately unguarded: K=0 divides by zero
	// and the non-finite value sticks.
	got := Next(2, 3.8, 0)
	if !math.IsNaN(got) && !math.IsInf(got, 0) {
		t.Errorf("Next with K=0 = %v, want non-finite", got)
	}
}

func TestNewRejectsBadCapacity(t *testing.T) {
	for _, k := range []float64{0, -1, -1000} {
		if _, err := New(3.8, k, 2); !errors.Is(err, dynamo.ErrCarryingCapacity) {
			t.Errorf("New with K=%v: error = %v, want ErrCarryingCapacity", k, err)
		}
	}
	if _, err := New(3.8, 1000, 2); err != nil {
		t.Errorf("New with valid K failed: %v", err)
	}
}

func TestSeriesMatchesRecurrence(t *testing.T) {
	m, err := New(3.8, 1000, 2)
	if err != nil {
		t.Fatal(err)
	}

	series := m.Series(50)
	if len(series) != 51 {
		t.Fatalf("series length = %d, want 51", len(series))
	}
	if series[0] != 2 {
		t.Errorf("series[0] = %v, want initial population 2", series[0])
	}

	// Independent evaluation of the same recurrence.
	p := 2.0
	for i := 1; i <= 50; i++ {
		p = math.Max(0, 3.8*p*(1-p/1000))
		if series[i] != p {
			t.Fatalf("series[%d] = %v, want %v", i, series[i], p)
		}
		if series[i] <= 0 || series[i] >= 1000 {
			t.Fatalf("series[%d] = %v, want strictly inside (0, 1000)", i, series[i])
		}
	}
}

func TestSeriesNegativeYears(t *testing.T) {
	m, _ := New(2.0, 100, 5)
	series := m.Series(-3)
	if len(series) != 1 || series[0] != 5 {
		t.Errorf("Series(-3) = %v, want just the initial population", series)
	}
}
