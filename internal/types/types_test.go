package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsedResume_CollectionsNonNil(t *testing.T) {
	resume := NewParsedResume()
	require.NotNil(t, resume)
	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Education)
	assert.NotNil(t, resume.Skills)
	assert.NotNil(t, resume.Certifications)
	assert.NotNil(t, resume.Projects)
	assert.NotNil(t, resume.Languages)
}

func TestEmployerNames(t *testing.T) {
	resume := NewParsedResume()
	resume.Experience = []ExperienceEntry{
		{Company: "Tech Corp"},
		{Company: ""},
		{Company: "StartupXYZ"},
	}
	assert.Equal(t, []string{"Tech Corp", "StartupXYZ"}, resume.EmployerNames())
}

func TestNewConsistencyReport(t *testing.T) {
	report := NewConsistencyReport(nil)
	assert.True(t, report.Passed)
	assert.NotNil(t, report.Issues)
	assert.Empty(t, report.Issues)

	report = NewConsistencyReport([]ConsistencyIssue{{Type: IssueInventedDate, Value: "2019"}})
	assert.False(t, report.Passed)
	assert.Len(t, report.Issues, 1)
}

func TestRequestValidation(t *testing.T) {
	assert.Error(t, (&ParseRequest{}).Validate())
	assert.NoError(t, (&ParseRequest{Text: "resume text"}).Validate())

	assert.Error(t, (&CreateResumeRequest{}).Validate())
	assert.NoError(t, (&CreateResumeRequest{SourceName: "cv.txt", Text: "resume text"}).Validate())

	assert.Error(t, (&CheckRequest{GeneratedText: "text"}).Validate())
	assert.NoError(t, (&CheckRequest{Resume: NewParsedResume(), GeneratedText: "text"}).Validate())

	assert.Error(t, (&CheckResumeRequest{}).Validate())
	assert.NoError(t, (&CheckResumeRequest{GeneratedText: "text"}).Validate())

	assert.Error(t, (&GenerateRequest{}).Validate())
	assert.Error(t, (&GenerateRequest{JobText: "role", Kind: "poem"}).Validate())
	assert.NoError(t, (&GenerateRequest{JobText: "role"}).Validate())
	assert.NoError(t, (&GenerateRequest{JobText: "role", Kind: "cover_letter"}).Validate())
}
