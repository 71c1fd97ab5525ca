package store

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

type exportEnvelope struct {
	ID        string       `json:"id"`
	Kind      string       `json:"kind"`
	System    string       `json:"system"`
	Stepper   string       `json:"stepper"`
	Dt        float64      `json:"dt"`
	Speed     float64      `json:"speed"`
	CreatedAt time.Time    `json:"created_at"`
	Times     []float64    `json:"times,omitempty"`
	States    [][]float64  `json:"states,omitempty"`
	Points    [][2]float64 `json:"points,omitempty"`
}

// ExportJSON writes one run (metadata plus its data rows) as indented
// JSON. Trajectory runs carry times/states, sweeps carry (r, p) points.
func (s *Store) ExportJSON(id string, w io.Writer) error {
	meta, err := s.Load(id)
	if err != nil {
		return err
	}

	env := exportEnvelope{
		ID:        meta.ID,
		Kind:      meta.Kind,
		System:    meta.System,
		Stepper:   meta.Stepper,
		Dt:        meta.Dt,
		Speed:     meta.Speed,
		CreatedAt: meta.CreatedAt,
	}

	switch meta.Kind {
	case KindSweep:
		points, err := s.LoadPoints(id)
		if err != nil {
			return err
		}
		env.Points = make([][2]float64, len(points))
		for i, p := range points {
			env.Points[i] = [2]float64{p.R, p.P}
		}
	default:
		states, times, err := s.LoadStates(id)
		if err != nil {
			return err
		}
		env.States = states
		env.Times = times
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// ExportCSV copies a run's raw CSV to the writer.
func (s *Store) ExportCSV(id string, w io.Writer) error {
	if _, err := s.Load(id); err != nil {
		return err
	}
	f, err := os.Open(s.csvPath(id))
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
