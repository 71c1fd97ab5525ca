package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsperk/chaoslab/internal/dynamo"
	"github.com/jsperk/chaoslab/internal/logistic"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveRunRoundTrip(t *testing.T) {
	s := openTemp(t)

	times := []float64{0, 0.01, 0.02}
	states := []dynamo.State{
		{1.0, 1.0, 1.0},
		{1.0, 1.26, 0.9834},
		{1.026, 1.5218, 0.9674},
	}

	id, err := s.SaveRun("lorenz", "euler", 0.01, 1.0, times, states)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	meta, err := s.Load(id)
	require.NoError(t, err)
	require.Equal(t, KindTrajectory, meta.Kind)
	require.Equal(t, "lorenz", meta.System)
	require.Equal(t, "euler", meta.Stepper)
	require.Equal(t, 3, meta.Rows)

	gotStates, gotTimes, err := s.LoadStates(id)
	require.NoError(t, err)
	require.Len(t, gotStates, 3)
	require.Len(t, gotTimes, 3)
	require.InDelta(t, 0.02, gotTimes[2], 1e-9)
	require.InDelta(t, 1.5218, gotStates[2][1], 1e-6)
}

func TestSaveRunLengthMismatch(t *testing.T) {
	s := openTemp(t)

	_, err := s.SaveRun("lorenz", "euler", 0.01, 1.0, []float64{0}, nil)
	require.Error(t, err)
}

func TestSaveSweepRoundTrip(t *testing.T) {
	s := openTemp(t)

	cfg := logistic.DefaultSweepConfig()
	points := []logistic.Point{
		{R: 2.0, P: 500.0},
		{R: 3.2, P: 513.04},
		{R: 3.2, P: 799.46},
	}

	id, err := s.SaveSweep(cfg, points)
	require.NoError(t, err)

	meta, err := s.Load(id)
	require.NoError(t, err)
	require.Equal(t, KindSweep, meta.Kind)
	require.Equal(t, 3, meta.Rows)

	got, err := s.LoadPoints(id)
	require.NoError(t, err)
	require.Equal(t, points, got)
}

func TestList(t *testing.T) {
	s := openTemp(t)

	runs, err := s.List()
	require.NoError(t, err)
	require.Empty(t, runs)

	_, err = s.SaveRun("lorenz", "euler", 0.01, 1.0, []float64{0}, []dynamo.State{{1, 1, 1}})
	require.NoError(t, err)
	_, err = s.SaveSweep(logistic.DefaultSweepConfig(), nil)
	require.NoError(t, err)

	runs, err = s.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
}

func TestLoadUnknownRun(t *testing.T) {
	s := openTemp(t)
	_, err := s.Load("no-such-run")
	require.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	s := openTemp(t)

	id, err := s.SaveRun("brusselator", "rk4", 0.01, 1.0,
		[]float64{0, 0.01}, []dynamo.State{{1, 1}, {0.965, 1.044}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.ExportJSON(id, &buf))

	var env map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	require.Equal(t, "brusselator", env["system"])
	require.Len(t, env["states"], 2)
}

func TestFileLayout(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	id, err := s.SaveRun("lorenz", "euler", 0.01, 1.0, []float64{0}, []dynamo.State{{1, 1, 1}})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "runs.db"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, id+".csv"))
	require.NoError(t, err)
}
