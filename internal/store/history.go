package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"quickmath/internal/models"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNoCompletedRounds is returned by BestElapsed when no completed round has
// been recorded yet.
var ErrNoCompletedRounds = errors.New("no completed rounds recorded")

const schema = `
CREATE TABLE IF NOT EXISTS rounds (
	id                 TEXT PRIMARY KEY,
	played_at          TIMESTAMP NOT NULL,
	questions_total    INTEGER NOT NULL,
	questions_answered INTEGER NOT NULL,
	completed          INTEGER NOT NULL,
	elapsed_ms         INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_rounds_played_at ON rounds (played_at DESC);
`

// HistoryStore records finished rounds in a local SQLite database so the home
// screen can show recent results and the best completed time.
type HistoryStore struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*HistoryStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	// The app is the only writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &HistoryStore{db: db}, nil
}

// Close releases the underlying database handle.
func (hs *HistoryStore) Close() error {
	return hs.db.Close()
}

// Save records one finished round. A missing ID is filled in with a fresh
// UUID; the stored result is returned.
func (hs *HistoryStore) Save(result models.RoundResult) (models.RoundResult, error) {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.PlayedAt.IsZero() {
		result.PlayedAt = time.Now()
	}

	_, err := hs.db.Exec(
		`INSERT INTO rounds (id, played_at, questions_total, questions_answered, completed, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		result.ID,
		result.PlayedAt.UTC(),
		result.QuestionsTotal,
		result.QuestionsAnswered,
		boolToInt(result.Completed),
		result.Elapsed.Milliseconds(),
	)
	if err != nil {
		return models.RoundResult{}, fmt.Errorf("failed to save round: %w", err)
	}
	return result, nil
}

// Recent returns up to limit rounds, most recent first.
func (hs *HistoryStore) Recent(limit int) ([]models.RoundResult, error) {
	rows, err := hs.db.Query(
		`SELECT id, played_at, questions_total, questions_answered, completed, elapsed_ms
		 FROM rounds ORDER BY played_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent rounds: %w", err)
	}
	defer rows.Close()

	var results []models.RoundResult
	for rows.Next() {
		var (
			result    models.RoundResult
			completed int
			elapsedMs int64
		)
		if err := rows.Scan(&result.ID, &result.PlayedAt, &result.QuestionsTotal,
			&result.QuestionsAnswered, &completed, &elapsedMs); err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		result.Completed = completed != 0
		result.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent rounds: %w", err)
	}
	return results, nil
}

// BestElapsed returns the fastest elapsed time among completed rounds.
func (hs *HistoryStore) BestElapsed() (time.Duration, error) {
	var elapsedMs sql.NullInt64
	err := hs.db.QueryRow(
		`SELECT MIN(elapsed_ms) FROM rounds WHERE completed = 1`).Scan(&elapsedMs)
	if err != nil {
		return 0, fmt.Errorf("failed to query best time: %w", err)
	}
	if !elapsedMs.Valid {
		return 0, ErrNoCompletedRounds
	}
	return time.Duration(elapsedMs.Int64) * time.Millisecond, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
