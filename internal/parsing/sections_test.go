package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Section
		matched bool
	}{
		{"plain heading", "Experience", SectionExperience, true},
		{"decorated heading", "WORK EXPERIENCE:", SectionExperience, true},
		{"containment", "My Contact Info", SectionContact, true},
		{"summary synonym", "Objective", SectionSummary, true},
		{"skills synonym", "Core Competencies", SectionSkills, true},
		{"unknown", "Jane Doe", SectionOther, false},
		{"empty", "   ", SectionOther, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section, ok := ClassifyLine(tt.line)
			assert.Equal(t, tt.matched, ok)
			assert.Equal(t, tt.want, section)
		})
	}
}

func TestClassifyLine_PrecedenceOrder(t *testing.T) {
	// "professional experience" contains both "professional" (not a keyword)
	// and "experience"; the experience category claims it before education's
	// broader keywords could.
	section, ok := ClassifyLine("Professional Experience")
	assert.True(t, ok)
	assert.Equal(t, SectionExperience, section)

	// "technical skills" must classify to skills, not experience, because
	// categories are scanned in a fixed order and only skills matches.
	section, ok = ClassifyLine("Technical Skills")
	assert.True(t, ok)
	assert.Equal(t, SectionSkills, section)
}

func TestIsSectionHeading_RejectsProse(t *testing.T) {
	// Short prose that merely starts with a keyword-derived word must not be
	// treated as a heading.
	_, ok := isSectionHeading("Experienced software engineer")
	assert.False(t, ok)

	// Long lines are never headings.
	_, ok = isSectionHeading("Experience with distributed systems, caching layers, and message brokers at scale")
	assert.False(t, ok)

	section, ok := isSectionHeading("Experience")
	assert.True(t, ok)
	assert.Equal(t, SectionExperience, section)

	// All-caps decorated headings match by containment.
	section, ok = isSectionHeading("== WORK EXPERIENCE ==")
	assert.True(t, ok)
	assert.Equal(t, SectionExperience, section)
}

func TestSegment_Basic(t *testing.T) {
	text := `Jane Doe
jane@example.com

Summary
Backend engineer.

Experience
Engineer - Acme (2020-2021)

Skills
Python, AWS`

	sections := Segment(text)

	assert.Equal(t, "Jane Doe\njane@example.com", sections[SectionOther])
	assert.Equal(t, "Backend engineer.", sections[SectionSummary])
	assert.Equal(t, "Engineer - Acme (2020-2021)", sections[SectionExperience])
	assert.Equal(t, "Python, AWS", sections[SectionSkills])
}

func TestSegment_HeadingConsumed(t *testing.T) {
	sections := Segment("Skills\nPython")
	assert.NotContains(t, sections[SectionSkills], "Skills")
}

func TestSegment_RepeatedHeadingAppends(t *testing.T) {
	text := `Skills
Python

Experience
Engineer - Acme (2020-2021)

Skills
AWS`

	sections := Segment(text)
	assert.Equal(t, "Python\nAWS", sections[SectionSkills])
}

func TestSegment_Empty(t *testing.T) {
	assert.Empty(t, Segment(""))
	assert.Empty(t, Segment("\n\n\n"))
}

func TestSectionBounds(t *testing.T) {
	lines := []string{
		"Jane Doe",
		"Education",
		"B.S. in Math - State University - 2018",
		"Skills",
		"Python",
	}

	from, to, ok := sectionBounds(lines, SectionEducation, func(line string) bool {
		return headingContains(line, SectionEducation)
	})
	assert.True(t, ok)
	assert.Equal(t, 2, from)
	assert.Equal(t, 3, to)
}

func TestSectionBounds_NotFound(t *testing.T) {
	_, _, ok := sectionBounds([]string{"Jane Doe"}, SectionEducation, func(line string) bool {
		return headingContains(line, SectionEducation)
	})
	assert.False(t, ok)
}
