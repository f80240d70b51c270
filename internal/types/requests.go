package types

import (
	"github.com/go-playground/validator/v10"
)

// ParseRequest represents the request body for stateless parsing.
type ParseRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// CreateResumeRequest represents the request to parse and persist a resume.
type CreateResumeRequest struct {
	SourceName string `json:"source_name,omitempty" validate:"omitempty,max=255"`
	Text       string `json:"text" validate:"required,min=1"`
}

// CheckRequest represents a stateless consistency check: a source resume
// record plus freshly generated text to verify against it.
type CheckRequest struct {
	Resume        *ParsedResume `json:"resume" validate:"required"`
	GeneratedText string        `json:"generated_text" validate:"required,min=1"`
}

// CheckResumeRequest represents a consistency check against a stored resume.
type CheckResumeRequest struct {
	GeneratedText string `json:"generated_text" validate:"required,min=1"`
}

// GenerateRequest represents a request to generate tailored text from a
// stored resume and a job description.
type GenerateRequest struct {
	JobText string `json:"job_text" validate:"required,min=1"`
	Kind    string `json:"kind,omitempty" validate:"omitempty,oneof=summary cover_letter"`
}

// Validate validates the ParseRequest using the validator.
func (r *ParseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateResumeRequest using the validator.
func (r *CreateResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CheckRequest using the validator.
func (r *CheckRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CheckResumeRequest using the validator.
func (r *CheckResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
