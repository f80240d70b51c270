// Package parsing provides heuristic segmentation and field extraction that
// turns raw extracted resume text into a structured ParsedResume record.
package parsing

import "strings"

// Section names a recognized block of a resume.
type Section string

// Section constants enumerate the recognized resume sections
const (
	SectionContact        Section = "contact"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
	SectionProjects       Section = "projects"
	SectionLanguages      Section = "languages"
	SectionInterests      Section = "interests"
	SectionOther          Section = "other"
)

// sectionKeywords is the ordered heading classification table. Order defines
// precedence: the first category whose keyword list matches wins.
var sectionKeywords = []struct {
	Section  Section
	Keywords []string
}{
	{SectionContact, []string{"contact information", "contact", "personal information"}},
	{SectionSummary, []string{"professional summary", "summary", "objective", "profile", "about me", "overview"}},
	{SectionExperience, []string{"professional experience", "work experience", "experience", "employment", "work history", "career"}},
	{SectionEducation, []string{"education", "academic", "qualifications", "degrees"}},
	{SectionSkills, []string{"technical skills", "skills", "core competencies", "technologies", "expertise"}},
	{SectionProjects, []string{"projects", "portfolio"}},
	{SectionCertifications, []string{"certifications", "certificates", "licenses"}},
	{SectionLanguages, []string{"languages"}},
	{SectionInterests, []string{"interests", "hobbies", "activities"}},
}

// maxHeadingLength guards the extractor-side heading predicate: real section
// headings are short lines, while prose paragraphs that merely mention a
// keyword are long.
const maxHeadingLength = 60

// ClassifyLine matches a line against the heading keyword table using
// case-insensitive substring containment. Returns SectionOther and false
// when no category matches.
func ClassifyLine(line string) (Section, bool) {
	lower := strings.ToLower(strings.TrimSpace(line))
	if lower == "" {
		return SectionOther, false
	}
	for _, entry := range sectionKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				return entry.Section, true
			}
		}
	}
	return SectionOther, false
}

// keywordAtStart reports whether lower begins with kw followed by a
// non-letter (or nothing). This keeps "experienced engineer" from matching
// the "experience" keyword.
func keywordAtStart(lower, kw string) bool {
	if !strings.HasPrefix(lower, kw) {
		return false
	}
	rest := lower[len(kw):]
	if rest == "" {
		return true
	}
	c := rest[0]
	return !(c >= 'a' && c <= 'z')
}

// isSectionHeading is the shared heading predicate used by the extractors'
// forward scans. It is stricter than ClassifyLine: the line must be short,
// and must either start with a section keyword at a word boundary or be an
// all-caps line containing one.
func isSectionHeading(line string) (Section, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || len(trimmed) > maxHeadingLength {
		return SectionOther, false
	}
	lower := strings.ToLower(strings.TrimSuffix(trimmed, ":"))
	allCaps := trimmed == strings.ToUpper(trimmed) && trimmed != strings.ToLower(trimmed)

	for _, entry := range sectionKeywords {
		for _, kw := range entry.Keywords {
			if lower == kw || keywordAtStart(lower, kw) {
				return entry.Section, true
			}
			if allCaps && strings.Contains(lower, kw) {
				return entry.Section, true
			}
		}
	}
	return SectionOther, false
}

// Segment splits normalized resume text into named sections. It performs a
// single forward pass over the non-empty trimmed lines, maintaining a current
// section cursor that starts at SectionOther. A line that classifies to a
// category is consumed as a heading and never added to content. Later
// occurrences of the same heading append into the same bucket.
func Segment(text string) map[Section]string {
	out := make(map[Section]string)
	current := SectionOther
	var buf []string

	flush := func() {
		content := strings.TrimSpace(strings.Join(buf, "\n"))
		buf = nil
		if content == "" {
			return
		}
		if existing, ok := out[current]; ok {
			out[current] = existing + "\n" + content
		} else {
			out[current] = content
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if section, ok := ClassifyLine(line); ok {
			if section != current {
				flush()
				current = section
			}
			// Heading line is consumed either way.
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return out
}

// splitLines returns the non-empty trimmed lines of text.
func splitLines(text string) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// sectionBounds locates the section introduced by the heading at or after
// start for which match returns true, and returns the half-open line range
// [from, to) of its content. The end index is found by scanning forward for
// the next heading that classifies to a different section. Returns ok=false
// when no heading matches.
func sectionBounds(lines []string, target Section, match func(line string) bool) (from, to int, ok bool) {
	from = -1
	for i, line := range lines {
		if match(line) {
			from = i + 1
			break
		}
	}
	if from < 0 {
		return 0, 0, false
	}

	to = len(lines)
	for i := from; i < len(lines); i++ {
		if section, isHeading := isSectionHeading(lines[i]); isHeading && section != target {
			to = i
			break
		}
	}
	return from, to, true
}

// headingMatchesExact reports whether the line is an exact or
// boundary-prefix match for one of the section's keywords. This is stricter
// than ClassifyLine and avoids false positives inside prose.
func headingMatchesExact(line string, section Section) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	lower = strings.TrimSuffix(lower, ":")
	for _, entry := range sectionKeywords {
		if entry.Section != section {
			continue
		}
		for _, kw := range entry.Keywords {
			if lower == kw || keywordAtStart(lower, kw) {
				return true
			}
		}
	}
	return false
}

// headingContains reports whether the line contains one of the section's
// keywords (case-insensitive). Looser than headingMatchesExact.
func headingContains(line string, section Section) bool {
	classified, ok := isSectionHeading(line)
	return ok && classified == section
}
