package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	// certificationShapes capture (name, issuer, year) and (name, year).
	certificationShapes = []*regexp.Regexp{
		regexp.MustCompile(`^(.+?)\s*[-–—]\s*(.+?)[\s,–—-]*(\d{4})\s*$`),
		regexp.MustCompile(`^(.+?)\s*\((\d{4})\)\s*$`),
	}
	certExpiryPattern = regexp.MustCompile(`(?i)expires\s*[:\s]\s*(\d{4})`)

	// projectShapes capture, in order: (name, start, end), (name, start,
	// end) without parens, and (name, free-text description).
	projectShapes = []*regexp.Regexp{
		regexp.MustCompile(`^(.+?)\s*\(` + startToken + rangeSep + endToken + `\)\s*$`),
		regexp.MustCompile(`^(.+?)\s*[-–—]\s*` + startToken + rangeSep + endToken + `\s*$`),
		regexp.MustCompile(`^(.{1,60}?)\s*\((.+)\)\s*$`),
	}
	technologiesPrefix = regexp.MustCompile(`(?i)^(?:technologies|tech stack|stack|built with)\s*:\s*(.+)$`)

	// languageShapes capture (language, proficiency).
	languageShapes = []*regexp.Regexp{
		regexp.MustCompile(`^([A-Za-z ]+?)\s*[-–—:]\s*(.+)$`),
		regexp.MustCompile(`^([A-Za-z ]+?)\s*\((.+)\)\s*$`),
	}
)

// maxBareNameLength bounds lines accepted as a bare project or language name.
const maxBareNameLength = 60

// extractCertifications parses the certifications section. Lines matching no
// shape are skipped; an expiry year on the entry line is captured separately.
func extractCertifications(lines []string) []types.Certification {
	certs := []types.Certification{}

	from, to, ok := sectionBounds(lines, SectionCertifications, func(line string) bool {
		return headingContains(line, SectionCertifications)
	})
	if !ok {
		return certs
	}

	for i := from; i < to; i++ {
		line, _ := stripBullet(lines[i])
		cert, matched := matchCertificationLine(line)
		if !matched {
			continue
		}
		if m := certExpiryPattern.FindStringSubmatch(line); m != nil {
			cert.Expiry = m[1]
		}
		certs = append(certs, cert)
	}

	return certs
}

func matchCertificationLine(line string) (types.Certification, bool) {
	for idx, pattern := range certificationShapes {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		cert := types.Certification{Name: strings.TrimSpace(m[1])}
		if idx == 0 {
			cert.Issuer = strings.TrimSpace(m[2])
			cert.Date = strings.TrimSpace(m[3])
		} else {
			cert.Date = strings.TrimSpace(m[2])
		}
		return cert, true
	}
	return types.Certification{}, false
}

// extractProjects parses the projects section. Besides the shape table, a
// short line that does not read like description text is accepted as a bare
// project name; an embedded URL is pulled into the URL field.
func extractProjects(lines []string) []types.Project {
	projects := []types.Project{}

	from, to, ok := sectionBounds(lines, SectionProjects, func(line string) bool {
		return headingContains(line, SectionProjects)
	})
	if !ok {
		return projects
	}

	var current *types.Project
	var description []string

	flushDescription := func() {
		if current != nil && len(description) > 0 {
			current.Description = strings.TrimSpace(strings.Join(description, " "))
		}
		description = nil
	}

	for i := from; i < to; i++ {
		line := lines[i]

		if text, isBullet := stripBullet(line); isBullet {
			if current != nil && text != "" {
				description = append(description, text)
			}
			continue
		}
		if m := technologiesPrefix.FindStringSubmatch(line); m != nil && current != nil {
			for _, token := range skillSplitPattern.Split(m[1], -1) {
				if token = strings.TrimSpace(token); token != "" {
					current.Technologies = append(current.Technologies, token)
				}
			}
			continue
		}

		if project, matched := matchProjectLine(line); matched {
			flushDescription()
			projects = append(projects, project)
			current = &projects[len(projects)-1]
			continue
		}
		if current != nil {
			description = append(description, line)
		}
	}
	flushDescription()

	return projects
}

func matchProjectLine(line string) (types.Project, bool) {
	for idx, pattern := range projectShapes {
		m := pattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		project := types.Project{
			Name:         strings.TrimSpace(m[1]),
			Technologies: []string{},
		}
		switch idx {
		case 0, 1:
			project.StartDate = strings.TrimSpace(m[2])
			end := strings.TrimSpace(m[3])
			if !isPresentToken(end) {
				project.EndDate = end
			}
		case 2:
			project.Description = strings.TrimSpace(m[2])
		}
		return project, true
	}

	// Bare project name fallback.
	if !looksLikeProjectName(line) {
		return types.Project{}, false
	}
	project := types.Project{Name: line, Technologies: []string{}}
	if url := urlPattern.FindString(line); url != "" {
		project.URL = strings.TrimRight(url, ".,;")
		project.Name = strings.TrimSpace(strings.TrimRight(strings.ReplaceAll(line, url, ""), " -–—"))
	}
	return project, true
}

// looksLikeProjectName rejects lines that read like description text.
func looksLikeProjectName(line string) bool {
	if len(line) >= maxBareNameLength {
		return false
	}
	if strings.HasSuffix(line, ".") {
		return false
	}
	// Description sentences start lowercase; names do not.
	first := line[0]
	return first < 'a' || first > 'z'
}

// extractLanguages parses the languages section: dash/colon separated
// proficiency, parenthesized proficiency, or a bare language name.
// Comma-separated lists on one line are split into bare entries.
func extractLanguages(lines []string) []types.LanguageSkill {
	languages := []types.LanguageSkill{}

	from, to, ok := sectionBounds(lines, SectionLanguages, func(line string) bool {
		return headingContains(line, SectionLanguages)
	})
	if !ok {
		return languages
	}

	for i := from; i < to; i++ {
		line, _ := stripBullet(lines[i])
		if matched := matchLanguageLine(line); matched != nil {
			languages = append(languages, *matched)
			continue
		}
		if strings.Contains(line, ",") {
			for _, token := range strings.Split(line, ",") {
				if token = strings.TrimSpace(token); token != "" && len(token) < maxBareNameLength {
					languages = append(languages, types.LanguageSkill{Language: token})
				}
			}
			continue
		}
		if line != "" && len(line) < maxBareNameLength {
			languages = append(languages, types.LanguageSkill{Language: line})
		}
	}

	return languages
}

func matchLanguageLine(line string) *types.LanguageSkill {
	for _, pattern := range languageShapes {
		if m := pattern.FindStringSubmatch(line); m != nil {
			return &types.LanguageSkill{
				Language:    strings.TrimSpace(m[1]),
				Proficiency: strings.TrimSpace(m[2]),
			}
		}
	}
	return nil
}
