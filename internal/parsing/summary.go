package parsing

import "strings"

// maxSummaryLines bounds how many lines after the summary heading are
// collected into the summary text.
const maxSummaryLines = 4

// extractSummary locates the first summary/objective/profile heading and
// greedily collects up to maxSummaryLines following lines, stopping early at
// the next recognized section heading. Lines are joined with spaces.
func extractSummary(lines []string) string {
	start := -1
	for i, line := range lines {
		if headingContains(line, SectionSummary) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	var collected []string
	for i := start; i < len(lines) && len(collected) < maxSummaryLines; i++ {
		if _, isHeading := isSectionHeading(lines[i]); isHeading {
			break
		}
		collected = append(collected, lines[i])
	}

	return strings.TrimSpace(strings.Join(collected, " "))
}
