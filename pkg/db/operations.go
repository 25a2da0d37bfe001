package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtnitsch/wordfreq/pkg/mapreduce"
)

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = errors.New("run not found")

// Run describes one counted document.
type Run struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	Document    string    `json:"document" yaml:"document"`
	ReportPath  string    `json:"report_path,omitempty" yaml:"report_path,omitempty"`
	Language    string    `json:"language,omitempty" yaml:"language,omitempty"`
	TotalTokens int       `json:"total_tokens" yaml:"total_tokens"`
	Vocabulary  int       `json:"vocabulary" yaml:"vocabulary"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// RecordRun stores a document's counts and returns the new run ID.
// The run and its word counts are written in a single transaction.
func (db *DB) RecordRun(run Run, counts map[string]int) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}
	if run.Vocabulary == 0 {
		run.Vocabulary = len(counts)
	}

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(`
		INSERT INTO runs (run_id, document, report_path, language, total_tokens, vocabulary)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.RunID, run.Document, run.ReportPath, run.Language, run.TotalTokens, run.Vocabulary)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO word_counts (run_id, word, count) VALUES (?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("failed to prepare word insert: %w", err)
	}
	defer stmt.Close()

	for word, count := range counts {
		if count <= 0 {
			continue
		}
		if _, err := stmt.Exec(run.RunID, word, count); err != nil {
			return "", fmt.Errorf("failed to insert word %q: %w", word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return run.RunID, nil
}

// GetRun returns a single run by ID.
func (db *DB) GetRun(runID string) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, document, report_path, language, total_tokens, vocabulary, created_at
		FROM runs WHERE run_id = ?
	`, runID).Scan(&r.RunID, &r.Document, &r.ReportPath, &r.Language, &r.TotalTokens, &r.Vocabulary, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}

// ListRuns returns the most recent runs first. limit <= 0 returns all runs.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, document, report_path, language, total_tokens, vocabulary, created_at
		FROM runs ORDER BY created_at DESC, rowid DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.Document, &r.ReportPath, &r.Language, &r.TotalTokens, &r.Vocabulary, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("row scan failed: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// TopWords returns the n most frequent words of a run, ties broken by word.
func (db *DB) TopWords(runID string, n int) ([]mapreduce.Entry, error) {
	if _, err := db.GetRun(runID); err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT word, count FROM word_counts
		WHERE run_id = ?
		ORDER BY count DESC, word ASC
		LIMIT ?
	`, runID, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top words: %w", err)
	}
	defer rows.Close()

	entries := []mapreduce.Entry{}
	for rows.Next() {
		var e mapreduce.Entry
		if err := rows.Scan(&e.Word, &e.Count); err != nil {
			return nil, fmt.Errorf("row scan failed: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// WordCount returns the stored count of word in a run, or 0 if absent.
func (db *DB) WordCount(runID, word string) (int, error) {
	var count int
	err := db.QueryRow("SELECT count FROM word_counts WHERE run_id = ? AND word = ?", runID, word).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get word count: %w", err)
	}
	return count, nil
}

// DeleteRun removes a run and its word counts.
func (db *DB) DeleteRun(runID string) error {
	res, err := db.Exec("DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}
