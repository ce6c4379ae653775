package db

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/web-atlas/web-atlas/models"
)

// InsertURL parses and inserts a URL, returning the url_id. If the URL
// already exists, returns the existing url_id.
func (db *DB) InsertURL(rawURL string) (int64, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return 0, fmt.Errorf("failed to parse URL: %w", err)
	}

	var existingID int64
	err = db.QueryRow("SELECT url_id FROM urls WHERE original_url = ?", rawURL).Scan(&existingID)
	if err == nil {
		return existingID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to check existing URL: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO urls (original_url, scheme, domain, path)
		VALUES (?, ?, ?, ?)
	`, rawURL, parsed.Scheme, parsed.Host, parsed.Path)
	if err != nil {
		return 0, fmt.Errorf("failed to insert URL: %w", err)
	}

	urlID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get URL ID: %w", err)
	}
	return urlID, nil
}

// RecordAccess logs one reachability check for a URL.
func (db *DB) RecordAccess(urlID int64, status string, success bool) error {
	_, err := db.Exec(`
		INSERT INTO url_accesses (url_id, status, success)
		VALUES (?, ?, ?)
	`, urlID, status, success)
	if err != nil {
		return fmt.Errorf("failed to record access: %w", err)
	}
	return nil
}

// RecordSubmission logs the outcome of processing one pending-list URL.
func (db *DB) RecordSubmission(urlID int64, slug, status, detail, recordPath string) error {
	_, err := db.Exec(`
		INSERT INTO submissions (url_id, slug, status, detail, record_path)
		VALUES (?, ?, ?, ?, ?)
	`, urlID, slug, status, detail, recordPath)
	if err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}
	return nil
}

// RecordDecision logs one reviewer decision under a review run id.
func (db *DB) RecordDecision(runID string, d models.Decision) error {
	_, err := db.Exec(`
		INSERT INTO decisions (run_id, file_path, action, reason, category, quality)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, d.File, string(d.Action), d.Reason, d.SuggestedCategory, string(d.Quality))
	if err != nil {
		return fmt.Errorf("failed to record decision: %w", err)
	}
	return nil
}

// SubmissionRow is one row of the submissions listing.
type SubmissionRow struct {
	SubmissionID int64
	URL          string
	Slug         string
	Status       string
	Detail       string
	RecordPath   string
	CreatedAt    time.Time
}

// ListSubmissions returns recent submissions, newest first.
func (db *DB) ListSubmissions(limit int) ([]SubmissionRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT s.submission_id, u.original_url, COALESCE(s.slug, ''),
		       s.status, COALESCE(s.detail, ''), COALESCE(s.record_path, ''), s.created_at
		FROM submissions s
		JOIN urls u ON u.url_id = s.url_id
		ORDER BY s.submission_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var out []SubmissionRow
	for rows.Next() {
		var r SubmissionRow
		if err := rows.Scan(&r.SubmissionID, &r.URL, &r.Slug, &r.Status, &r.Detail, &r.RecordPath, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// DecisionRow is one row of the decisions listing.
type DecisionRow struct {
	DecisionID int64
	RunID      string
	FilePath   string
	Action     string
	Reason     string
	Category   string
	Quality    string
	CreatedAt  time.Time
}

// ListDecisions returns recent review decisions, newest first.
func (db *DB) ListDecisions(limit int) ([]DecisionRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(`
		SELECT decision_id, run_id, file_path, action, reason,
		       COALESCE(category, ''), COALESCE(quality, ''), created_at
		FROM decisions
		ORDER BY decision_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	defer rows.Close()

	var out []DecisionRow
	for rows.Next() {
		var r DecisionRow
		if err := rows.Scan(&r.DecisionID, &r.RunID, &r.FilePath, &r.Action, &r.Reason, &r.Category, &r.Quality, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan decision: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
