// Package store persists completed runs: an SQLite index of run metadata
// plus one CSV file of trajectory or sweep data per run. The simulation
// core never imports this package; callers hand it published snapshots.
package store

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/jsperk/chaoslab/internal/dynamo"
	"github.com/jsperk/chaoslab/internal/logistic"
)

const (
	KindTrajectory = "trajectory"
	KindSweep      = "sweep"
)

// Store wraps the data directory and its SQLite run index.
type Store struct {
	baseDir string
	db      *sqlx.DB
	log     *slog.Logger
}

// RunMeta is one row of the run index.
type RunMeta struct {
	ID        string    `db:"id" json:"id"`
	Kind      string    `db:"kind" json:"kind"`
	System    string    `db:"system" json:"system"`
	Stepper   string    `db:"stepper" json:"stepper"`
	Dt        float64   `db:"dt" json:"dt"`
	Speed     float64   `db:"speed" json:"speed"`
	Rows      int       `db:"row_count" json:"rows"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Open opens or creates the store under baseDir.
func Open(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sqlx.Open("sqlite", filepath.Join(baseDir, "runs.db")+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open run index: %w", err)
	}

	s := &Store{
		baseDir: baseDir,
		db:      db,
		log:     slog.Default().With("component", "store"),
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		system TEXT NOT NULL,
		stepper TEXT NOT NULL,
		dt REAL NOT NULL,
		speed REAL NOT NULL,
		row_count INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) csvPath(id string) string {
	return filepath.Join(s.baseDir, id+".csv")
}

// SaveRun writes a trajectory to CSV and indexes it. The CSV carries a
// time column followed by one column per state component.
func (s *Store) SaveRun(system, stepper string, dt, speed float64, times []float64, states []dynamo.State) (string, error) {
	if len(times) != len(states) {
		return "", fmt.Errorf("times/states length mismatch: %d vs %d", len(times), len(states))
	}

	id := uuid.NewString()

	file, err := os.Create(s.csvPath(id))
	if err != nil {
		return "", err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"time"}
	if len(states) > 0 {
		for i := range states[0] {
			header = append(header, fmt.Sprintf("x%d", i))
		}
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, state := range states {
		row := make([]string, 0, len(state)+1)
		row = append(row, strconv.FormatFloat(times[i], 'f', 6, 64))
		for _, v := range state {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	meta := RunMeta{
		ID:        id,
		Kind:      KindTrajectory,
		System:    system,
		Stepper:   stepper,
		Dt:        dt,
		Speed:     speed,
		Rows:      len(states),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.insert(meta); err != nil {
		return "", err
	}

	s.log.Debug("saved run", "id", id, "system", system, "rows", len(states))
	return id, nil
}

// SaveSweep writes bifurcation points to CSV (columns r,p) and indexes
// the sweep as a run of kind "sweep".
func (s *Store) SaveSweep(cfg logistic.SweepConfig, points []logistic.Point) (string, error) {
	id := uuid.NewString()

	file, err := os.Create(s.csvPath(id))
	if err != nil {
		return "", err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"r", "p"}); err != nil {
		return "", err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.R, 'f', 3, 64),
			strconv.FormatFloat(p.P, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	meta := RunMeta{
		ID:        id,
		Kind:      KindSweep,
		System:    "logistic",
		Stepper:   "map",
		Dt:        0,
		Speed:     0,
		Rows:      len(points),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.insert(meta); err != nil {
		return "", err
	}

	s.log.Debug("saved sweep", "id", id, "points", len(points), "min_r", cfg.MinR, "max_r", cfg.MaxR)
	return id, nil
}

func (s *Store) insert(meta RunMeta) error {
	_, err := s.db.NamedExec(`
		INSERT INTO runs (id, kind, system, stepper, dt, speed, row_count, created_at)
		VALUES (:id, :kind, :system, :stepper, :dt, :speed, :row_count, :created_at)`,
		meta)
	if err != nil {
		return fmt.Errorf("index run %s: %w", meta.ID, err)
	}
	return nil
}

// List returns all indexed runs, newest first.
func (s *Store) List() ([]RunMeta, error) {
	runs := []RunMeta{}
	err := s.db.Select(&runs, `SELECT * FROM runs ORDER BY created_at DESC, id`)
	return runs, err
}

// Load returns the metadata for one run.
func (s *Store) Load(id string) (*RunMeta, error) {
	var meta RunMeta
	if err := s.db.Get(&meta, `SELECT * FROM runs WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("load run %s: %w", id, err)
	}
	return &meta, nil
}

// LoadStates reads a trajectory CSV back into state rows and times.
func (s *Store) LoadStates(id string) ([][]float64, []float64, error) {
	file, err := os.Open(s.csvPath(id))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([][]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		state := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			state = append(state, v)
		}
		times = append(times, t)
		states = append(states, state)
	}

	return states, times, nil
}

// LoadPoints reads a sweep CSV back into bifurcation points.
func (s *Store) LoadPoints(id string) ([]logistic.Point, error) {
	file, err := os.Open(s.csvPath(id))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([]logistic.Point, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < 2 {
			continue
		}
		rv, err1 := strconv.ParseFloat(record[0], 64)
		pv, err2 := strconv.ParseFloat(record[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		points = append(points, logistic.Point{R: rv, P: pv})
	}

	return points, nil
}
