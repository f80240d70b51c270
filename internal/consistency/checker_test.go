package consistency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func sourceResume() *types.ParsedResume {
	resume := types.NewParsedResume()
	resume.Experience = []types.ExperienceEntry{
		{Company: "Tech Corp", Position: "Engineer", StartDate: "2020", EndDate: "2023"},
		{Company: "StartupXYZ", Position: "Engineer", StartDate: "2018", EndDate: "2020"},
	}
	resume.Education = []types.EducationEntry{
		{Institution: "State University", EndDate: "2018"},
	}
	resume.Skills = []string{"Python", "AWS", "Docker"}
	return resume
}

func TestCheck_CleanText(t *testing.T) {
	generated := "Seasoned engineer who worked at Tech Corp from 2020 to 2023 using Python and AWS."

	report := Check(sourceResume(), generated)
	assert.True(t, report.Passed)
	assert.NotNil(t, report.Issues)
	assert.Empty(t, report.Issues)
}

func TestCheck_FlagsInventedEmployer(t *testing.T) {
	generated := "Led platform teams at Google Inc. and later rejoined at Google Inc. after shipping systems at Tech Corp."

	report := Check(sourceResume(), generated)
	assert.False(t, report.Passed)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, types.IssueInventedEmployer, report.Issues[0].Type)
	assert.Equal(t, "Google Inc.", report.Issues[0].Value)
}

func TestCheck_FlagsInventedDates(t *testing.T) {
	generated := "Worked at Tech Corp from 2020 to 2023; shipped a rewrite in 2015, again in 2015, then in 2016-06."

	report := Check(sourceResume(), generated)
	assert.False(t, report.Passed)
	require.Len(t, report.Issues, 2)
	assert.Equal(t, types.IssueInventedDate, report.Issues[0].Type)
	assert.Equal(t, "2015", report.Issues[0].Value)
	assert.Equal(t, "2016-06", report.Issues[1].Value)
}

func TestCheck_SkillFamilyRule(t *testing.T) {
	t.Run("same family tolerated", func(t *testing.T) {
		// Java is absent from the source, but Python covers the language
		// family.
		report := Check(sourceResume(), "Experienced with Java and distributed systems.")
		assert.True(t, report.Passed)
	})

	t.Run("uncovered family flagged", func(t *testing.T) {
		report := Check(sourceResume(), "Built rich interfaces with React.")
		assert.False(t, report.Passed)
		require.Len(t, report.Issues, 1)
		assert.Equal(t, types.IssueInventedSkill, report.Issues[0].Type)
		assert.Equal(t, "React", report.Issues[0].Value)
		assert.Contains(t, report.Issues[0].Detail, "frontend framework")
	})

	t.Run("cloud family covered by AWS", func(t *testing.T) {
		report := Check(sourceResume(), "Deployed workloads on Azure.")
		assert.True(t, report.Passed)
	})

	t.Run("no family never flagged", func(t *testing.T) {
		resume := sourceResume()
		resume.Skills = []string{"Python"}
		report := Check(resume, "Containerized services with Docker and Kubernetes.")
		assert.True(t, report.Passed)
	})

	t.Run("source match is case insensitive", func(t *testing.T) {
		resume := sourceResume()
		resume.Skills = []string{"python"}
		report := Check(resume, "Wrote tooling in PYTHON.")
		assert.True(t, report.Passed)
	})
}

func TestCheck_EmptyResume(t *testing.T) {
	report := Check(types.NewParsedResume(), "Worked at Initech in 2019 using React.")
	assert.False(t, report.Passed)
	assert.Len(t, report.Issues, 3)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "tech corp", normalizeName("Tech Corp."))
	assert.Equal(t, "acme", normalizeName("  ACME, "))
}

func TestCompileSkillMatcher_Boundaries(t *testing.T) {
	matcher := compileSkillMatcher("Java")
	assert.True(t, matcher.MatchString("ships Java services"))
	assert.False(t, matcher.MatchString("ships JavaScript services"))

	// Names ending in a non-word byte take no trailing boundary.
	matcher = compileSkillMatcher("C++")
	assert.True(t, matcher.MatchString("modern C++ codebases"))
}

func TestCheckDates_OnlyCalendarYearTokens(t *testing.T) {
	// 4-digit numbers outside 19xx/20xx are quantities or identifiers, not
	// dates; they must never be reported as invented years.
	generated := "Worked at Tech Corp since 2020, handling 3200 records daily across 2101 sites."

	report := Check(sourceResume(), generated)
	assert.True(t, report.Passed)
	assert.Empty(t, report.Issues)
}
