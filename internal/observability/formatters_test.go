package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/types"
)

func TestPrintParsedResume(t *testing.T) {
	resume := types.NewParsedResume()
	resume.Contact = types.ContactInfo{Name: "Jane Doe", Email: "jane@example.com"}
	resume.Experience = []types.ExperienceEntry{
		{Company: "Tech Corp", Position: "Engineer", StartDate: "2020", Current: true},
	}
	resume.Education = []types.EducationEntry{
		{Degree: "B.S.", Institution: "State University"},
	}
	resume.Skills = []string{"Python", "AWS"}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedResume(resume)

	out := buf.String()
	assert.Contains(t, out, "PARSED RESUME")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Engineer at Tech Corp (2020-Present)")
	assert.Contains(t, out, "B.S., State University")
	assert.Contains(t, out, "Skills (2): Python, AWS")
}

func TestPrintParsedResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintParsedResume(nil)
	assert.Empty(t, buf.String())
}

func TestPrintConsistencyReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintConsistencyReport(types.NewConsistencyReport(nil))
	assert.Contains(t, buf.String(), "Result: PASSED")

	buf.Reset()
	report := types.NewConsistencyReport([]types.ConsistencyIssue{
		{Type: types.IssueInventedEmployer, Value: "Initech", Detail: "employer not found in source resume"},
	})
	NewPrinter(&buf).PrintConsistencyReport(report)

	out := buf.String()
	assert.Contains(t, out, "Result: FAILED (1 issues)")
	assert.Contains(t, out, "[invented_employer] Initech")
}

func TestPrintIngestMetadata(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintIngestMetadata(ingestion.NewMetadata("hello", "cv.txt"))

	out := buf.String()
	assert.Contains(t, out, "INGESTED DOCUMENT")
	assert.Contains(t, out, "Source: cv.txt")
	assert.Contains(t, out, "Chars:  5")
}
