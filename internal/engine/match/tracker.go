package match

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// ApplicationStatus is the lifecycle state of a tracked application.
type ApplicationStatus string

const (
	StatusSaved     ApplicationStatus = "saved"
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusRejected  ApplicationStatus = "rejected"
)

func validStatus(s string) bool {
	switch ApplicationStatus(s) {
	case StatusSaved, StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// TrackedApplication is one row in the tracker. JobID ties it back to the
// posting so the filter's hide-applied predicate can consume the tracker.
type TrackedApplication struct {
	ID        int64             `json:"id"`
	JobID     string            `json:"job_id"`
	Title     string            `json:"title"`
	Company   string            `json:"company"`
	Status    ApplicationStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

// Tracker is a SQLite-backed application store. It is the stateful
// collaborator around the otherwise pure engine: FilterJobs receives its
// AppliedJobIDs output, never the tracker itself.
type Tracker struct {
	db *sql.DB
}

// OpenTracker opens (or creates) the tracker database at path, creating
// parent directories as needed.
func OpenTracker(path string) (*Tracker, error) {
	if path == "" {
		return nil, errors.New("tracker: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("tracker: mkdir %s: %w", filepath.Dir(path), err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("tracker: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS applications (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		job_id     TEXT NOT NULL UNIQUE,
		title      TEXT NOT NULL,
		company    TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'saved',
		notes      TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("tracker: init schema: %w", err)
	}
	return &Tracker{db: db}, nil
}

// Close releases the underlying database handle.
func (t *Tracker) Close() error {
	return t.db.Close()
}

// Add records a job with the given status (default "saved"). Re-adding the
// same job id updates its status instead of failing.
func (t *Tracker) Add(ctx context.Context, jobID, title, company, status, notes string) (*TrackedApplication, error) {
	if jobID == "" || title == "" || company == "" {
		return nil, errors.New("tracker: job_id, title and company are required")
	}
	status = strings.ToLower(status)
	if status == "" {
		status = string(StatusSaved)
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("tracker: invalid status %q (valid: saved, applied, interview, offer, rejected)", status)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := t.db.ExecContext(ctx,
		`INSERT INTO applications (job_id, title, company, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(job_id) DO UPDATE SET status=excluded.status, notes=excluded.notes, updated_at=excluded.updated_at`,
		jobID, title, company, status, notes, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("tracker: insert: %w", err)
	}
	id, _ := res.LastInsertId()
	return &TrackedApplication{
		ID: id, JobID: jobID, Title: title, Company: company,
		Status: ApplicationStatus(status), Notes: notes,
		CreatedAt: now, UpdatedAt: now,
	}, nil
}

// List returns tracked applications, newest first, optionally filtered by
// status. limit <= 0 or > 100 defaults to 50.
func (t *Tracker) List(ctx context.Context, status string, limit int) ([]TrackedApplication, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var rows *sql.Rows
	var err error
	if status != "" {
		status = strings.ToLower(status)
		if !validStatus(status) {
			return nil, fmt.Errorf("tracker: invalid status %q", status)
		}
		rows, err = t.db.QueryContext(ctx,
			`SELECT id, job_id, title, company, status, notes, created_at, updated_at
			 FROM applications WHERE status = ? ORDER BY updated_at DESC LIMIT ?`,
			status, limit,
		)
	} else {
		rows, err = t.db.QueryContext(ctx,
			`SELECT id, job_id, title, company, status, notes, created_at, updated_at
			 FROM applications ORDER BY updated_at DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("tracker: query: %w", err)
	}
	defer rows.Close()

	apps := []TrackedApplication{}
	for rows.Next() {
		var a TrackedApplication
		var notes sql.NullString
		if err := rows.Scan(&a.ID, &a.JobID, &a.Title, &a.Company, &a.Status,
			&notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
			continue
		}
		a.Notes = notes.String
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// UpdateStatus moves an application to a new status, optionally replacing
// its notes.
func (t *Tracker) UpdateStatus(ctx context.Context, jobID, status, notes string) error {
	if jobID == "" {
		return errors.New("tracker: job_id is required")
	}
	status = strings.ToLower(status)
	if !validStatus(status) {
		return fmt.Errorf("tracker: invalid status %q", status)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var res sql.Result
	var err error
	if notes != "" {
		res, err = t.db.ExecContext(ctx,
			`UPDATE applications SET status=?, notes=?, updated_at=? WHERE job_id=?`,
			status, notes, now, jobID)
	} else {
		res, err = t.db.ExecContext(ctx,
			`UPDATE applications SET status=?, updated_at=? WHERE job_id=?`,
			status, now, jobID)
	}
	if err != nil {
		return fmt.Errorf("tracker: update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("tracker: no application for job %q", jobID)
	}
	return nil
}

// AppliedJobIDs returns the set of job ids the candidate has moved past
// "saved" — applied, interviewing, offered, or rejected. This is the input
// FilterJobs expects for its hide-applied predicate.
func (t *Tracker) AppliedJobIDs(ctx context.Context) (map[string]bool, error) {
	rows, err := t.db.QueryContext(ctx,
		`SELECT job_id FROM applications WHERE status != ?`, string(StatusSaved))
	if err != nil {
		return nil, fmt.Errorf("tracker: applied ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			continue
		}
		ids[id] = true
	}
	return ids, rows.Err()
}
