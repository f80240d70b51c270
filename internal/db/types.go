package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/types"
)

// Resume is a stored resume: the raw ingested text plus its parsed record.
type Resume struct {
	ID         uuid.UUID           `json:"id"`
	SourceName string              `json:"source_name"`
	RawText    string              `json:"raw_text"`
	Parsed     *types.ParsedResume `json:"parsed"`
	CreatedAt  time.Time           `json:"created_at"`
}

// ResumeSummary is a lightweight view of a resume for listing.
type ResumeSummary struct {
	ID         uuid.UUID `json:"id"`
	SourceName string    `json:"source_name"`
	Chars      int       `json:"chars"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReportRecord is a stored consistency check result for a resume.
type ReportRecord struct {
	ID            uuid.UUID                `json:"id"`
	ResumeID      uuid.UUID                `json:"resume_id"`
	GeneratedText string                   `json:"generated_text"`
	Passed        bool                     `json:"passed"`
	Issues        []types.ConsistencyIssue `json:"issues"`
	CreatedAt     time.Time                `json:"created_at"`
}
