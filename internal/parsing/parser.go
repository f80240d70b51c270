package parsing

import (
	"fmt"

	"github.com/jonathan/resume-parser/internal/types"
)

// Parser assembles a ParsedResume by running the field extractors in a fixed
// order over the same input lines. It holds no per-call state, so a single
// instance may be shared freely across goroutines.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse turns normalized resume text into a fully-populated ParsedResume.
// Absent sections yield empty collections, never an error; the empty string
// parses to an empty record. A *ParseError is returned only when an
// extractor fails unexpectedly, which is fatal and non-retryable for the
// document.
func (p *Parser) Parse(text string) (result *types.ParsedResume, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &ParseError{Message: fmt.Sprintf("extractor failure: %v", r)}
		}
	}()

	lines := splitLines(text)
	resume := types.NewParsedResume()

	// Extractors run in a fixed order and do not depend on each other's
	// output.
	resume.Contact = extractContact(lines, text)
	resume.Summary = extractSummary(lines)
	resume.Experience = extractExperience(lines)
	resume.Education = extractEducation(lines)
	resume.Skills = extractSkills(lines)
	resume.Certifications = extractCertifications(lines)
	resume.Projects = extractProjects(lines)
	resume.Languages = extractLanguages(lines)

	return resume, nil
}

// ParseResume parses text with a fresh Parser.
func ParseResume(text string) (*types.ParsedResume, error) {
	return NewParser().Parse(text)
}
