// Package storage keeps the history of finished runs in SQLite through the
// modernc.org/sqlite driver, which needs no cgo.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// ErrInvalidRun is returned by SaveRun for records that cannot be stored.
var ErrInvalidRun = errors.New("storage: invalid run")

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished run of a level.
type Run struct {
	ID        string
	LevelID   string
	Player    string
	Outcome   Outcome
	Score     int
	Kills     int
	Ticks     int
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	Runs       int
	Wins       int
	BestScore  int
	AvgScore   float64
	TotalKills int64
	LastPlayed time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	level_id   TEXT NOT NULL,
	player     TEXT NOT NULL DEFAULT '',
	outcome    TEXT NOT NULL,
	score      INTEGER NOT NULL,
	kills      INTEGER NOT NULL DEFAULT 0,
	ticks      INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(level_id, score DESC);
`

// Open opens the run database at path, creating the file, its directory and
// the schema when missing. A leading ~ stands for the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err == nil {
		err = db.Ping()
	}
	if err == nil {
		_, err = db.Exec(schema)
	}
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its id. A run without an id gets
// a fresh UUID, one without a timestamp gets the current time.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.LevelID == "" {
		return "", fmt.Errorf("%w: empty level id", ErrInvalidRun)
	}
	if run.Outcome != OutcomeWon && run.Outcome != OutcomeLost {
		return "", fmt.Errorf("%w: outcome %q", ErrInvalidRun, run.Outcome)
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	} else if _, err := uuid.Parse(run.ID); err != nil {
		return "", fmt.Errorf("%w: id %q: %v", ErrInvalidRun, run.ID, err)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, level_id, player, outcome, score, kills, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.LevelID, run.Player, string(run.Outcome),
		run.Score, run.Kills, run.Ticks, run.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// TopRuns retrieves the best N runs for the given level.
// Results are ordered by score descending, earlier runs first on ties.
func (s *Store) TopRuns(levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, player, outcome, score, kills, ticks, created_at
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelID, &r.Player, &outcome, &r.Score, &r.Kills, &r.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestScore returns the highest score for the given level.
// Returns 0 if no runs exist.
func (s *Store) BestScore(levelID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE level_id = ?",
		levelID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// RunCount returns the number of recorded runs for the given level.
func (s *Store) RunCount(levelID string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE level_id = ?", levelID).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// ClearRuns deletes all runs for the given level.
func (s *Store) ClearRuns(levelID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific level.
func (s *Store) Stats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(kills), 0),
		        MAX(created_at)
		 FROM runs WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Runs, &stats.Wins, &stats.BestScore, &stats.AvgScore, &stats.TotalKills, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
