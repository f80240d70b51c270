// Package generation produces job-tailored documents from a parsed resume,
// guarded by the fact consistency checker.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/resume-parser/internal/consistency"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/prompts"
	"github.com/jonathan/resume-parser/internal/types"
)

// Kind selects the document type to generate.
type Kind string

const (
	KindSummary     Kind = "summary"
	KindCoverLetter Kind = "cover_letter"
)

// promptKey maps a document kind to its prompt template.
func promptKey(kind Kind) (string, error) {
	switch kind {
	case KindSummary:
		return "tailored-summary", nil
	case KindCoverLetter:
		return "cover-letter", nil
	default:
		return "", fmt.Errorf("unknown document kind %q", kind)
	}
}

// Result holds the generated document and its final consistency report.
type Result struct {
	Text        string                   `json:"text"`
	Kind        Kind                     `json:"kind"`
	Report      *types.ConsistencyReport `json:"report"`
	Regenerated bool                     `json:"regenerated"`
}

// Error represents a failure during document generation.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Generate produces a document of the given kind from the resume and job
// text. The draft is checked against the source resume; if the checker flags
// issues, generation retries once with the violations fed back. The result
// always carries the report for the returned text, so callers can surface
// residual issues even after the retry.
func Generate(ctx context.Context, client llm.Client, resume *types.ParsedResume, jobText string, kind Kind) (*Result, error) {
	key, err := promptKey(kind)
	if err != nil {
		return nil, &Error{Message: "invalid request", Cause: err}
	}

	resumeJSON, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return nil, &Error{Message: "failed to encode resume", Cause: err}
	}

	template, err := prompts.Get("generation.json", key)
	if err != nil {
		return nil, &Error{Message: "failed to load prompt", Cause: err}
	}
	prompt := prompts.Format(template, map[string]string{
		"Resume":  string(resumeJSON),
		"JobText": jobText,
	})

	draft, err := client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &Error{Message: "model call failed", Cause: err}
	}
	draft = strings.TrimSpace(draft)

	report := consistency.Check(resume, draft)
	if report.Passed {
		return &Result{Text: draft, Kind: kind, Report: report}, nil
	}

	revised, err := regenerate(ctx, client, string(resumeJSON), jobText, draft, report)
	if err != nil {
		// The retry is best effort; fall back to the flagged draft.
		return &Result{Text: draft, Kind: kind, Report: report}, nil
	}

	return &Result{
		Text:        revised,
		Kind:        kind,
		Report:      consistency.Check(resume, revised),
		Regenerated: true,
	}, nil
}

// regenerate asks the model to rewrite a flagged draft with the violations
// spelled out. Uses the advanced tier; the rewrite is the harder task.
func regenerate(ctx context.Context, client llm.Client, resumeJSON, jobText, draft string, report *types.ConsistencyReport) (string, error) {
	template, err := prompts.Get("generation.json", "regenerate-with-violations")
	if err != nil {
		return "", err
	}
	prompt := prompts.Format(template, map[string]string{
		"Resume":     resumeJSON,
		"JobText":    jobText,
		"Previous":   draft,
		"Violations": formatViolations(report),
	})

	revised, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(revised), nil
}

func formatViolations(report *types.ConsistencyReport) string {
	var sb strings.Builder
	for i, issue := range report.Issues {
		fmt.Fprintf(&sb, "%d. [%s] %q: %s\n", i+1, issue.Type, issue.Value, issue.Detail)
	}
	return sb.String()
}
