package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// phonePatterns are tried in order of specificity; the first match wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+\d{1,3}[\s.-]?\(?\d{1,4}\)?[\s.-]?\d{3,4}[\s.-]?\d{3,4}`),
		regexp.MustCompile(`\(\d{3}\)[\s.-]?\d{3}[\s.-]?\d{4}`),
		regexp.MustCompile(`\b\d{3}[\s.-]\d{3}[\s.-]\d{4}\b`),
	}

	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+/?`)
	urlPattern      = regexp.MustCompile(`(?i)https?://[^\s)>\]]+`)

	// locationPatterns are tried in order: explicit labels first, then a
	// bare "City, ST" shape.
	locationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:location|address)\s*[:\-]\s*(.+)$`),
		regexp.MustCompile(`\b([A-Z][A-Za-z.\- ]+,\s*[A-Z]{2})\b`),
	}
)

// extractContact pulls contact details out of the resume. Each field uses an
// independent pattern; absence of any field is not an error.
func extractContact(lines []string, text string) types.ContactInfo {
	var contact types.ContactInfo

	if match := emailPattern.FindString(text); match != "" {
		contact.Email = match
	}

	for _, pattern := range phonePatterns {
		if match := pattern.FindString(text); match != "" {
			contact.Phone = strings.TrimSpace(match)
			break
		}
	}

	if match := linkedinPattern.FindString(text); match != "" {
		contact.LinkedIn = match
	}

	for _, match := range urlPattern.FindAllString(text, -1) {
		if strings.Contains(strings.ToLower(match), "linkedin.com") {
			continue
		}
		contact.Website = strings.TrimRight(match, ".,;")
		break
	}

	// Name heuristic: the first non-empty line, provided it looks like a
	// name rather than an email address or phone number.
	if len(lines) > 0 {
		first := lines[0]
		if !strings.Contains(first, "@") && !strings.ContainsAny(first, "0123456789") {
			contact.Name = first
		}
	}

	for _, line := range lines {
		if loc := matchLocation(line); loc != "" {
			contact.Location = loc
			break
		}
	}

	return contact
}

func matchLocation(line string) string {
	for _, pattern := range locationPatterns {
		if m := pattern.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}
