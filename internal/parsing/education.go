package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// educationShapes are tried in order per line. The first two capture
// (degree, institution, year); the loosest captures (degree, year) and maps
// the year into both the institution and end-date fields, matching the
// historical field mapping downstream consumers rely on.
var educationShapes = []*regexp.Regexp{
	regexp.MustCompile(`^(.+?)\s*[-–—]\s*(.+?)[\s,–—-]*(\d{4})\s*$`),
	regexp.MustCompile(`^(.+?),\s*(.+?)[\s,–—-]*(\d{4})\s*$`),
	regexp.MustCompile(`^(.+?)[\s,–—-]+(\d{4})\s*$`),
}

var gpaPattern = regexp.MustCompile(`(?i)\bGPA\s*[:\s]\s*([0-9]\.[0-9]+|[0-9])`)

// gpaLookahead is how many lines past an entry line are scanned for a GPA
// token.
const gpaLookahead = 2

// extractEducation locates the education section by keyword containment
// (looser than the experience locator) and parses entry lines with the
// ordered shape table.
func extractEducation(lines []string) []types.EducationEntry {
	entries := []types.EducationEntry{}

	from, to, ok := sectionBounds(lines, SectionEducation, func(line string) bool {
		return headingContains(line, SectionEducation)
	})
	if !ok {
		return entries
	}

	var current *types.EducationEntry
	for i := from; i < to; i++ {
		line := lines[i]

		if text, isBullet := stripBullet(line); isBullet {
			if current != nil && text != "" {
				current.Achievements = append(current.Achievements, text)
			}
			continue
		}
		if entry, matched := matchEducationLine(line); matched {
			// Scan the entry line and the following lines for a GPA token.
			for j := i; j < min(i+1+gpaLookahead, to); j++ {
				if m := gpaPattern.FindStringSubmatch(lines[j]); m != nil {
					entry.GPA = m[1]
					break
				}
			}
			entries = append(entries, entry)
			current = &entries[len(entries)-1]
		}
	}

	return entries
}

// matchEducationLine tries the education shapes in order against a line.
func matchEducationLine(line string) (types.EducationEntry, bool) {
	for _, pattern := range educationShapes {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entry := types.EducationEntry{
			Degree:       strings.TrimSpace(m[1]),
			Institution:  strings.TrimSpace(m[2]),
			Achievements: []string{},
		}
		if len(m) > 3 {
			entry.EndDate = strings.TrimSpace(m[3])
		} else {
			// Loosest shape: the year lands in both fields.
			entry.EndDate = strings.TrimSpace(m[2])
		}
		entry.Degree, entry.Field = splitDegreeField(entry.Degree)
		return entry, true
	}
	return types.EducationEntry{}, false
}

// splitDegreeField splits "Bachelor of Science in Computer Science" into
// degree and field of study at the first " in ".
func splitDegreeField(degree string) (string, string) {
	if idx := strings.Index(degree, " in "); idx > 0 {
		return strings.TrimSpace(degree[:idx]), strings.TrimSpace(degree[idx+4:])
	}
	return degree, ""
}
