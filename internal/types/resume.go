// Package types provides type definitions for structured data used throughout the resume-parser system.
package types

// ContactInfo holds contact details extracted from the top of a resume.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// ExperienceEntry represents a single work experience entry.
// EndDate is empty when Current is true ("Present" in the source text).
type ExperienceEntry struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements"`
}

// EducationEntry represents a single education entry.
type EducationEntry struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field,omitempty"`
	Location     string   `json:"location,omitempty"`
	GPA          string   `json:"gpa,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Achievements []string `json:"achievements"`
}

// Certification represents a professional certification.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	Expiry string `json:"expiry,omitempty"`
}

// Project represents a personal or professional project.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
}

// LanguageSkill represents a spoken language and optional proficiency level.
type LanguageSkill struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// ParsedResume is the canonical structured record produced by the parser.
// All sequence fields are always non-nil, even when the corresponding
// section was absent from the input.
type ParsedResume struct {
	Contact        ContactInfo       `json:"contact"`
	Summary        string            `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Certifications []Certification   `json:"certifications"`
	Projects       []Project         `json:"projects"`
	Languages      []LanguageSkill   `json:"languages"`
}

// NewParsedResume returns a ParsedResume with all collections initialized.
func NewParsedResume() *ParsedResume {
	return &ParsedResume{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         []string{},
		Certifications: []Certification{},
		Projects:       []Project{},
		Languages:      []LanguageSkill{},
	}
}

// EmployerNames returns the company names of all experience entries.
func (r *ParsedResume) EmployerNames() []string {
	names := make([]string, 0, len(r.Experience))
	for _, exp := range r.Experience {
		if exp.Company != "" {
			names = append(names, exp.Company)
		}
	}
	return names
}
