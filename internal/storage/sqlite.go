// Package storage provides SQLite-based persistence for solved puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// DefaultPath is where the results database lives unless overridden.
const DefaultPath = "~/.hanoi/results.db"

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one solved puzzle.
type Result struct {
	ID        int64
	DiskCount int
	Moves     int
	Optimal   int
	Auto      bool // Solved by the auto-solver
	Duration  time.Duration
	CreatedAt time.Time
}

// Perfect reports whether the puzzle was solved in the minimal number of moves.
func (r Result) Perfect() bool {
	return r.Moves == r.Optimal
}

// ResultFromOutcome converts a finished round into a storable result.
func ResultFromOutcome(o core.Outcome) Result {
	return Result{
		DiskCount: o.DiskCount,
		Moves:     o.Moves,
		Optimal:   o.Optimal,
		Auto:      o.Auto,
		Duration:  o.Duration,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			disk_count INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			optimal INTEGER NOT NULL,
			auto INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_disk_count ON results(disk_count);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(disk_count, moves, duration_ms);
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

// SaveResult records a solved puzzle and returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results (disk_count, moves, optimal, auto, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		r.DiskCount, r.Moves, r.Optimal, boolToInt(r.Auto), r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveOutcome records a finished round.
func (s *Store) SaveOutcome(o core.Outcome) (int64, error) {
	return s.SaveResult(ResultFromOutcome(o))
}

// TopResults retrieves the best results for the given disk count: fewest
// moves first, then fastest, then oldest.
func (s *Store) TopResults(diskCount, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, disk_count, moves, optimal, auto, duration_ms, created_at
		 FROM results
		 WHERE disk_count = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		diskCount, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestResult returns the top result for the given disk count, or nil when
// nothing has been recorded.
func (s *Store) BestResult(diskCount int) (*Result, error) {
	row := s.db.QueryRow(
		`SELECT id, disk_count, moves, optimal, auto, duration_ms, created_at
		 FROM results
		 WHERE disk_count = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT 1`,
		diskCount,
	)

	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// DiskCounts returns every disk count that has at least one result, ascending.
func (s *Store) DiskCounts() ([]int, error) {
	rows, err := s.db.Query(`SELECT DISTINCT disk_count FROM results ORDER BY disk_count`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query disk counts: %w", err)
	}
	defer rows.Close()

	var counts []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts = append(counts, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearResults deletes all results for the given disk count.
func (s *Store) ClearResults(diskCount int) error {
	_, err := s.db.Exec("DELETE FROM results WHERE disk_count = ?", diskCount)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for one disk count.
type Stats struct {
	DiskCount  int
	Solves     int
	AutoSolves int
	Perfect    int // Solves in the optimal number of moves
	BestMoves  int
	AvgMoves   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for the given disk count.
func (s *Store) Stats(diskCount int) (*Stats, error) {
	stats := &Stats{DiskCount: diskCount}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(auto), 0),
		        COALESCE(SUM(CASE WHEN moves = optimal THEN 1 ELSE 0 END), 0),
		        COALESCE(MIN(moves), 0),
		        COALESCE(AVG(moves), 0)
		 FROM results WHERE disk_count = ?`,
		diskCount,
	).Scan(&stats.Solves, &stats.AutoSolves, &stats.Perfect, &stats.BestMoves, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE disk_count = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		diskCount,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (Result, error) {
	var (
		r          Result
		auto       int
		durationMS int64
		createdAt  any
	)
	err := row.Scan(&r.ID, &r.DiskCount, &r.Moves, &r.Optimal, &auto, &durationMS, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	r.Auto = auto != 0
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
