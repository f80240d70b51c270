// Package db provides PostgreSQL storage for resumes and consistency reports.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-parser/internal/types"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// schema is the DDL for the two tables this service owns. Statements are
// idempotent so EnsureSchema can run at every startup.
const schema = `
CREATE TABLE IF NOT EXISTS resumes (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	source_name TEXT NOT NULL,
	raw_text TEXT NOT NULL,
	parsed JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS consistency_reports (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	resume_id UUID NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
	generated_text TEXT NOT NULL,
	passed BOOLEAN NOT NULL,
	issues JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_reports_resume_id ON consistency_reports(resume_id);
`

// EnsureSchema creates the tables this service needs if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveResume stores a resume with its parsed record and returns the new ID.
func (db *DB) SaveResume(ctx context.Context, sourceName, rawText string, parsed *types.ParsedResume) (uuid.UUID, error) {
	parsedJSON, err := json.Marshal(parsed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (source_name, raw_text, parsed)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		sourceName, rawText, parsedJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns (nil, nil) when not found.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var resume Resume
	var parsedJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, source_name, raw_text, parsed, created_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&resume.ID, &resume.SourceName, &resume.RawText, &parsedJSON, &resume.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	resume.Parsed = types.NewParsedResume()
	if err := json.Unmarshal(parsedJSON, resume.Parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal parsed resume: %w", err)
	}
	return &resume, nil
}

// ListResumes retrieves recent resumes, newest first.
func (db *DB) ListResumes(ctx context.Context, limit int) ([]ResumeSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, source_name, LENGTH(raw_text), created_at
		 FROM resumes ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []ResumeSummary
	for rows.Next() {
		var summary ResumeSummary
		if err := rows.Scan(&summary.ID, &summary.SourceName, &summary.Chars, &summary.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, summary)
	}
	return resumes, nil
}

// DeleteResume deletes a resume and its reports (via cascade).
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found: %s", id)
	}
	return nil
}

// SaveReport stores a consistency check result for a resume and returns the
// new report ID.
func (db *DB) SaveReport(ctx context.Context, resumeID uuid.UUID, generatedText string, report *types.ConsistencyReport) (uuid.UUID, error) {
	issuesJSON, err := json.Marshal(report.Issues)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal issues: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO consistency_reports (resume_id, generated_text, passed, issues)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		resumeID, generatedText, report.Passed, issuesJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save report: %w", err)
	}
	return id, nil
}

// ListReportsByResume retrieves the reports for a resume, newest first.
func (db *DB) ListReportsByResume(ctx context.Context, resumeID uuid.UUID, limit int) ([]ReportRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, resume_id, generated_text, passed, issues, created_at
		 FROM consistency_reports
		 WHERE resume_id = $1 ORDER BY created_at DESC LIMIT $2`,
		resumeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []ReportRecord
	for rows.Next() {
		var record ReportRecord
		var issuesJSON []byte
		if err := rows.Scan(&record.ID, &record.ResumeID, &record.GeneratedText, &record.Passed, &issuesJSON, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		record.Issues = []types.ConsistencyIssue{}
		if err := json.Unmarshal(issuesJSON, &record.Issues); err != nil {
			return nil, fmt.Errorf("failed to unmarshal issues: %w", err)
		}
		reports = append(reports, record)
	}
	return reports, nil
}
