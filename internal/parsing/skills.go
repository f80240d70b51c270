package parsing

import (
	"regexp"
	"strings"
)

// skillSplitPattern separates skill tokens within a line.
var skillSplitPattern = regexp.MustCompile(`[,;|•*]`)

// maxSkillLength rejects tokens too long to be a single skill name.
const maxSkillLength = 50

// maxSkillsHeadingLength: a skills heading longer than this must be an exact
// keyword match, so prose mentions of "skills" do not open the section.
const maxSkillsHeadingLength = 50

// nonSkillWords marks tokens that leaked in from adjacent sections.
var nonSkillWords = []string{"interests", "reading"}

// extractSkills locates the skills section and splits its lines into a
// deduplicated, order-preserving list of skill names. Lines containing a
// colon are treated as a labeled category ("Languages: Go, Rust") and only
// the text after the first colon is split.
func extractSkills(lines []string) []string {
	skills := []string{}

	from, to, ok := sectionBounds(lines, SectionSkills, isSkillsHeading)
	if !ok {
		return skills
	}

	seen := make(map[string]struct{})
	appendTokens := func(text string) {
		for _, token := range skillSplitPattern.Split(text, -1) {
			token = strings.TrimSpace(token)
			if token == "" || len(token) >= maxSkillLength {
				continue
			}
			if isNonSkill(token) {
				continue
			}
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			skills = append(skills, token)
		}
	}

	// A heading of the form "Skills: Go, Rust" carries content on the
	// heading line itself.
	if from > 0 {
		if heading := lines[from-1]; strings.Contains(heading, ":") {
			appendTokens(heading[strings.Index(heading, ":")+1:])
		}
	}

	for i := from; i < to; i++ {
		line := lines[i]
		if idx := strings.Index(line, ":"); idx >= 0 {
			line = line[idx+1:]
		}
		appendTokens(line)
	}

	return skills
}

// isSkillsHeading accepts a heading line for the skills section: it must
// classify to skills and either be short or be an exact keyword match.
func isSkillsHeading(line string) bool {
	section, ok := ClassifyLine(line)
	if !ok || section != SectionSkills {
		return false
	}
	if len(strings.TrimSpace(line)) < maxSkillsHeadingLength {
		return true
	}
	return headingMatchesExact(line, SectionSkills)
}

func isNonSkill(token string) bool {
	lower := strings.ToLower(token)
	for _, word := range nonSkillWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
