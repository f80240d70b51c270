package consistency

import "regexp"

// techFamilies are the clusters used by the asymmetric skill rule. Skills
// outside every family are never flagged; expanding the list changes
// flagging behavior and needs product sign-off.
var techFamilies = map[string][]string{
	"language": {
		"JavaScript", "TypeScript", "Python", "Java", "Go", "Golang",
		"Rust", "C++", "C#", "Ruby", "PHP", "Swift", "Kotlin",
	},
	"frontend framework": {
		"React", "Angular", "Vue", "Svelte", "Next.js", "Ember",
	},
	"cloud provider": {
		"AWS", "Amazon Web Services", "Azure", "GCP", "Google Cloud",
	},
}

// referenceSkillNames is the fixed vocabulary scanned for in generated text.
// It covers the family members plus common technologies that are checked for
// presence but, having no family, are never flagged.
var referenceSkillNames = []string{
	"JavaScript", "TypeScript", "Python", "Java", "Go", "Golang", "Rust",
	"C++", "C#", "Ruby", "PHP", "Swift", "Kotlin",
	"React", "Angular", "Vue", "Svelte", "Next.js", "Ember",
	"AWS", "Amazon Web Services", "Azure", "GCP", "Google Cloud",
	"Docker", "Kubernetes", "Node.js", "Django", "Flask", "Spring",
	"PostgreSQL", "MySQL", "MongoDB", "Redis", "GraphQL", "Terraform",
}

type vocabularySkill struct {
	name    string
	matcher *regexp.Regexp
}

// skillVocabulary holds a precompiled case-insensitive word-boundary matcher
// per reference skill. Built once at init; matchers hold no state.
var skillVocabulary = buildVocabulary()

func buildVocabulary() []vocabularySkill {
	vocab := make([]vocabularySkill, 0, len(referenceSkillNames))
	for _, name := range referenceSkillNames {
		vocab = append(vocab, vocabularySkill{
			name:    name,
			matcher: compileSkillMatcher(name),
		})
	}
	return vocab
}

// compileSkillMatcher builds a case-insensitive matcher for a skill name.
// Word boundaries keep "Go" from matching inside "Google"; names ending in a
// non-word character (C++, C#) cannot take a trailing boundary.
func compileSkillMatcher(name string) *regexp.Regexp {
	pattern := `(?i)\b` + regexp.QuoteMeta(name)
	last := name[len(name)-1]
	if isWordByte(last) {
		pattern += `\b`
	}
	return regexp.MustCompile(pattern)
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// familyOf returns the technology family a skill belongs to, if any.
func familyOf(name string) (string, bool) {
	for family, members := range techFamilies {
		for _, member := range members {
			if member == name {
				return family, true
			}
		}
	}
	return "", false
}
