// Package consistency verifies that generated text does not introduce facts
// absent from the source resume (the hallucination guard).
package consistency

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	// employerPattern captures capitalized phrases following "at" or "@".
	employerPattern = regexp.MustCompile(`(?:\bat\s+|@\s*)([A-Z][A-Za-z0-9&.]*(?:\s+[A-Z][A-Za-z0-9&.]*)*)`)

	// datePattern captures year tokens, optionally followed by -MM or
	// -MM-DD. Only 19xx/20xx tokens count as years; other 4-digit numbers
	// (quantities, version fragments, street numbers) are not dates.
	datePattern = regexp.MustCompile(`\b((?:19|20)\d{2})(?:-\d{2}(?:-\d{2})?)?\b`)

	yearPattern = regexp.MustCompile(`(?:19|20)\d{2}`)
)

// Check compares generated text against the source resume and reports every
// employer, date, and skill that does not appear in the source. It is pure
// and reentrant; Passed is true iff no issues were found.
func Check(resume *types.ParsedResume, generated string) *types.ConsistencyReport {
	var issues []types.ConsistencyIssue
	issues = append(issues, checkEmployers(resume, generated)...)
	issues = append(issues, checkDates(resume, generated)...)
	issues = append(issues, checkSkills(resume, generated)...)
	return types.NewConsistencyReport(issues)
}

// checkEmployers flags capitalized phrases after "at"/"@" that match none of
// the source experience employers.
func checkEmployers(resume *types.ParsedResume, generated string) []types.ConsistencyIssue {
	known := make(map[string]struct{})
	for _, name := range resume.EmployerNames() {
		known[normalizeName(name)] = struct{}{}
	}

	var issues []types.ConsistencyIssue
	seen := make(map[string]struct{})
	for _, m := range employerPattern.FindAllStringSubmatch(generated, -1) {
		candidate := strings.TrimSpace(m[1])
		key := normalizeName(candidate)
		if key == "" {
			continue
		}
		if _, ok := known[key]; ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		issues = append(issues, types.ConsistencyIssue{
			Type:   types.IssueInventedEmployer,
			Value:  candidate,
			Detail: "employer not found in source resume",
		})
	}
	return issues
}

// checkDates flags year tokens in the generated text that match none of the
// experience start/end dates or education end dates in the source.
func checkDates(resume *types.ParsedResume, generated string) []types.ConsistencyIssue {
	known := make(map[string]struct{})
	addYears := func(token string) {
		for _, year := range yearPattern.FindAllString(token, -1) {
			known[year] = struct{}{}
		}
	}
	for _, exp := range resume.Experience {
		addYears(exp.StartDate)
		addYears(exp.EndDate)
	}
	for _, edu := range resume.Education {
		addYears(edu.EndDate)
	}

	var issues []types.ConsistencyIssue
	seen := make(map[string]struct{})
	for _, m := range datePattern.FindAllStringSubmatch(generated, -1) {
		token, year := m[0], m[1]
		if _, ok := known[year]; ok {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		issues = append(issues, types.ConsistencyIssue{
			Type:   types.IssueInventedDate,
			Value:  token,
			Detail: "date not found in source resume",
		})
	}
	return issues
}

// checkSkills flags reference-vocabulary skills mentioned in the generated
// text that are absent from the source skills. A missing skill is only
// flagged when it belongs to a known technology family AND the source has no
// member of that family at all; rewording within a family the candidate
// already holds is tolerated.
func checkSkills(resume *types.ParsedResume, generated string) []types.ConsistencyIssue {
	sourceSkills := make(map[string]struct{})
	for _, skill := range resume.Skills {
		sourceSkills[strings.ToLower(skill)] = struct{}{}
	}

	var issues []types.ConsistencyIssue
	for _, skill := range skillVocabulary {
		if !skill.matcher.MatchString(generated) {
			continue
		}
		if _, ok := sourceSkills[strings.ToLower(skill.name)]; ok {
			continue
		}
		family, inFamily := familyOf(skill.name)
		if !inFamily {
			continue
		}
		if sourceHasFamilyMember(sourceSkills, family) {
			continue
		}
		issues = append(issues, types.ConsistencyIssue{
			Type:   types.IssueInventedSkill,
			Value:  skill.name,
			Detail: fmt.Sprintf("skill from the %s family not found in source resume", family),
		})
	}
	return issues
}

func sourceHasFamilyMember(sourceSkills map[string]struct{}, family string) bool {
	for _, member := range techFamilies[family] {
		if _, ok := sourceSkills[strings.ToLower(member)]; ok {
			return true
		}
	}
	return false
}

// normalizeName lowercases and strips trailing punctuation for comparison.
func normalizeName(name string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(name)), ".,")
}
