// Package storage provides the SQLite run log for finished Solar City levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The log is opt-in: hosts only open a Store when a database path is given.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the run log.
type Store struct {
	db *sql.DB
}

// Run is one finished level attempt.
type Run struct {
	ID              int64
	RunID           uuid.UUID
	Level           int
	Outcome         string // "victory", "blackout" or "storm"
	Points          int
	Panels          int
	Buildings       int
	CO2Avoided      float64
	EnergyGenerated float64
	Elapsed         float64 // Seconds played before the level ended
	Seed            int64
	CreatedAt       time.Time
}

// Won reports whether the run ended in victory.
func (r Run) Won() bool {
	return r.Outcome == "victory"
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("storage: empty database path")
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			level INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			points INTEGER NOT NULL DEFAULT 0,
			panels INTEGER NOT NULL DEFAULT 0,
			buildings INTEGER NOT NULL DEFAULT 0,
			co2_avoided REAL NOT NULL DEFAULT 0,
			energy_generated REAL NOT NULL DEFAULT 0,
			elapsed REAL NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(level, points DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. A zero RunID is replaced with a fresh one.
// Returns the run ID that was stored.
func (s *Store) SaveRun(r Run) (uuid.UUID, error) {
	if r.RunID == uuid.Nil {
		r.RunID = uuid.New()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, level, outcome, points, panels, buildings, co2_avoided, energy_generated, elapsed, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID.String(),
		r.Level,
		r.Outcome,
		r.Points,
		r.Panels,
		r.Buildings,
		r.CO2Avoided,
		r.EnergyGenerated,
		r.Elapsed,
		r.Seed,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save run: %w", err)
	}

	return r.RunID, nil
}

const runColumns = `id, run_id, level, outcome, points, panels, buildings,
	co2_avoided, energy_generated, elapsed, seed, created_at`

// TopRuns retrieves the best N runs for the given level.
// Results are ordered by points descending.
func (s *Store) TopRuns(level, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE level = ?
		 ORDER BY points DESC, id ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recent runs across all levels.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID retrieves a run by its run ID. Returns nil if it does not exist.
func (s *Store) RunByID(id uuid.UUID) (*Run, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// BestScore returns the highest points for the given level.
// Returns 0 if no runs exist.
func (s *Store) BestScore(level int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(points) FROM runs WHERE level = ?",
		level,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given level.
func (s *Store) ClearRuns(level int) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE level = ?", level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	Level      int
	Runs       int
	Victories  int
	BestScore  int
	AvgScore   float64
	TotalCO2   float64
	LastPlayed time.Time
}

// WinRate returns the share of runs won, in [0, 1].
func (st LevelStats) WinRate() float64 {
	if st.Runs == 0 {
		return 0
	}
	return float64(st.Victories) / float64(st.Runs)
}

// GetLevelStats retrieves aggregated statistics for a level.
func (s *Store) GetLevelStats(level int) (*LevelStats, error) {
	stats := &LevelStats{Level: level}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'victory' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(points), 0),
		        COALESCE(AVG(points), 0),
		        COALESCE(SUM(co2_avoided), 0),
		        MAX(created_at)
		 FROM runs WHERE level = ?`,
		level,
	).Scan(&stats.Runs, &stats.Victories, &stats.BestScore, &stats.AvgScore, &stats.TotalCO2, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var runID string
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&runID,
			&r.Level,
			&r.Outcome,
			&r.Points,
			&r.Panels,
			&r.Buildings,
			&r.CO2Avoided,
			&r.EnergyGenerated,
			&r.Elapsed,
			&r.Seed,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		id, err := uuid.Parse(runID)
		if err != nil {
			return nil, fmt.Errorf("storage: bad run id %q: %w", runID, err)
		}
		r.RunID = id
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
