package logistic

import (
	"fmt"
	"math"

	"github.com/jsperk/chaoslab/internal/dynamo"
)

// Point is one long-run population value observed at a growth rate.
type Point struct {
	R float64
	P float64
}

// SweepConfig controls a bifurcation sweep over the growth rate.
type SweepConfig struct {
	MinR, MaxR float64
	K          float64
	P0         float64
	Settle     int // generations discarded before sampling
	Sample     int // generations recorded per growth rate
	Resolution int // growth-rate slices between MinR and MaxR
}

func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		MinR:       0.0,
		MaxR:       4.0,
		K:          1000,
		P0:         2,
		Settle:     1000,
		Sample:     100,
		Resolution: 1000,
	}
}

func (c SweepConfig) withDefaults() SweepConfig {
	d := DefaultSweepConfig()
	if c.Settle <= 0 {
		c.Settle = d.Settle
	}
	if c.Sample <= 0 {
		c.Sample = d.Sample
	}
	if c.Resolution <= 0 {
		c.Resolution = d.Resolution
	}
	return c
}

// Sweep computes the bifurcation diagram of the logistic map. For each of
// Resolution+1 evenly spaced growth rates in [MinR, MaxR] it discards
// Settle generations to shed the initial condition, then records Sample
// more, deduplicating values rounded to 2 decimals: a fixed point yields
// one entry per slice, a period-k cycle up to k, a chaotic regime up to
// Sample. Output ordering carries no meaning; the result is consumed as a
// scatter. MinR > MaxR yields an empty, non-error result.
func Sweep(cfg SweepConfig) ([]Point, error) {
	if cfg.K <= 0 {
		return nil, fmt.Errorf("%w: got %v", dynamo.ErrCarryingCapacity, cfg.K)
	}
	cfg = cfg.withDefaults()

	if cfg.MinR > cfg.MaxR {
		return []Point{}, nil
	}

	step := (cfg.MaxR - cfg.MinR) / float64(cfg.Resolution)

	points := make([]Point, 0, cfg.Resolution+1)
	seen := make(map[float64]struct{}, cfg.Sample)
	prevR := math.NaN()

	for i := 0; i <= cfg.Resolution; i++ {
		r := cfg.MinR + float64(i)*step
		rOut := math.Round(r*1000) / 1000

		p := cfg.P0
		for j := 0; j < cfg.Settle; j++ {
			p = Next(p, r, cfg.K)
		}

		// Slices that round to the same display rate share one dedup
		// set, so no two emitted points coincide exactly.
		if rOut != prevR {
			clear(seen)
			prevR = rOut
		}
		for j := 0; j < cfg.Sample; j++ {
			p = Next(p, r, cfg.K)
			v := math.Round(p*100) / 100
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			points = append(points, Point{R: rOut, P: v})
		}
	}

	return points, nil
}
