package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Date token atoms shared by the entry-line shapes. Start dates are free-text
// tokens like "2020" or "03/2020"; end dates additionally allow Present and
// Current markers.
const (
	startToken = `(\d{1,2}/\d{4}|\d{4})`
	endToken   = `(\d{1,2}/\d{4}|\d{4}|[Pp]resent|[Cc]urrent)`
	rangeSep   = `\s*(?:[-–—]|to)\s*`
)

// experienceShape is one entry-line pattern. All shapes capture groups in
// the same order: position, company, start date, end date.
type experienceShape struct {
	Name    string
	Pattern *regexp.Regexp
}

// experienceShapes are tried strictly in order; the first shape that matches
// a line wins and later shapes are not attempted. This is a fixed precedence
// rule, not a best-match search.
var experienceShapes = []experienceShape{
	{"dash-paren", regexp.MustCompile(`^(.+?)\s*[-–—]\s*(.+?)\s*\(` + startToken + rangeSep + endToken + `\)`)},
	{"at-paren", regexp.MustCompile(`^(.+?)\s+(?:at|@)\s+(.+?)\s*\(` + startToken + rangeSep + endToken + `\)`)},
	{"comma-paren", regexp.MustCompile(`^(.+?),\s*(.+?)\s*\(` + startToken + rangeSep + endToken + `\)`)},
	{"dash-plain", regexp.MustCompile(`^(.+?)\s*[-–—]\s*(.+?)[\s,–—-]*\(?\s*` + startToken + rangeSep + endToken + `\s*\)?\s*$`)},
	{"at-plain", regexp.MustCompile(`^(.+?)\s+(?:at|@)\s+(.+?)[\s,–—-]*\(?\s*` + startToken + rangeSep + endToken + `\s*\)?\s*$`)},
	{"comma-plain", regexp.MustCompile(`^(.+?),\s*(.+?)[\s,–—-]*\(?\s*` + startToken + rangeSep + endToken + `\s*\)?\s*$`)},
}

// bulletPrefixes are the glyphs that mark an achievement line.
var bulletPrefixes = []string{"•", "-", "*"}

// matchExperienceLine tries the experience shapes in order against a line.
// Returns the entry, the name of the matching shape, and whether any matched.
func matchExperienceLine(line string) (types.ExperienceEntry, string, bool) {
	for _, shape := range experienceShapes {
		m := shape.Pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entry := types.ExperienceEntry{
			Position:     strings.TrimSpace(m[1]),
			Company:      strings.TrimSpace(m[2]),
			StartDate:    strings.TrimSpace(m[3]),
			Achievements: []string{},
		}
		end := strings.TrimSpace(m[4])
		if isPresentToken(end) {
			entry.Current = true
		} else {
			entry.EndDate = end
		}
		return entry, shape.Name, true
	}
	return types.ExperienceEntry{}, "", false
}

func isPresentToken(token string) bool {
	lower := strings.ToLower(token)
	return lower == "present" || lower == "current"
}

// stripBullet removes a leading bullet glyph from a line. Returns the
// stripped text and whether the line was a bullet.
func stripBullet(line string) (string, bool) {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return line, false
}

// extractExperience locates the experience section by exact or
// boundary-prefix heading match and parses entry lines with the ordered
// shape table. Lines following a matched entry become achievement bullets or
// free-text description until the next entry or a foreign section heading.
func extractExperience(lines []string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}

	from, to, ok := sectionBounds(lines, SectionExperience, func(line string) bool {
		return headingMatchesExact(line, SectionExperience)
	})
	if !ok {
		return entries
	}

	var current *types.ExperienceEntry
	var description []string

	flushDescription := func() {
		if current != nil && len(description) > 0 {
			current.Description = strings.TrimSpace(strings.Join(description, " "))
		}
		description = nil
	}

	for i := from; i < to; i++ {
		line := lines[i]

		if entry, _, matched := matchExperienceLine(line); matched {
			flushDescription()
			entries = append(entries, entry)
			current = &entries[len(entries)-1]
			continue
		}

		if current == nil {
			continue
		}
		if text, isBullet := stripBullet(line); isBullet {
			if text != "" {
				current.Achievements = append(current.Achievements, text)
			}
			continue
		}
		description = append(description, line)
	}
	flushDescription()

	return entries
}
