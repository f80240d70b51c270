package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/consistency"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/generation"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/llm"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

// CreateResumeResponse represents the response for POST /resumes.
type CreateResumeResponse struct {
	ID     uuid.UUID           `json:"id"`
	Resume *types.ParsedResume `json:"resume"`
}

// CheckResumeResponse represents the response for POST /resumes/{id}/check.
type CheckResumeResponse struct {
	ReportID uuid.UUID                `json:"report_id"`
	Report   *types.ConsistencyReport `json:"report"`
}

// handleCreateResume cleans, parses, and stores resume text.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	var req types.CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	if req.SourceName == "" {
		req.SourceName = "api"
	}

	text := ingestion.CleanText(req.Text)
	resume, err := s.parser.Parse(text)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Parse failed: "+err.Error())
		return
	}

	if err := validateParsedRecord(resume); err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Schema validation failed: "+err.Error())
		return
	}

	id, err := s.db.SaveResume(r.Context(), req.SourceName, text, resume)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, CreateResumeResponse{ID: id, Resume: resume})
}

// validateParsedRecord verifies a parsed resume against the JSON schema
// before it is persisted, so the store only ever holds conforming records.
func validateParsedRecord(resume *types.ParsedResume) error {
	jsonBytes, err := json.Marshal(resume)
	if err != nil {
		return err
	}
	return schemas.ValidateParsedResume(jsonBytes)
}

// handleListResumes lists stored resumes, newest first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.db.ListResumes(r.Context(), 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if summaries == nil {
		summaries = []db.ResumeSummary{}
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleGetResume returns a stored resume by ID.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume deletes a stored resume and its reports.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteResume(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleCheckResume checks generated text against a stored resume and
// persists the resulting report.
func (s *Server) handleCheckResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.CheckResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	report := consistency.Check(resume.Parsed, req.GeneratedText)

	reportID, err := s.db.SaveReport(r.Context(), id, req.GeneratedText, report)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, CheckResumeResponse{ReportID: reportID, Report: report})
}

// handleListReports lists the stored consistency reports for a resume.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	reports, err := s.db.ListReportsByResume(r.Context(), id, 50)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if reports == nil {
		reports = []db.ReportRecord{}
	}
	s.jsonResponse(w, http.StatusOK, reports)
}

// handleGenerate produces a tailored document from a stored resume and
// persists the consistency report of the final text.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	if s.apiKey == "" {
		s.errorResponse(w, http.StatusServiceUnavailable, "Generation is not configured (missing API key)")
		return
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	kind := generation.Kind(req.Kind)
	if kind == "" {
		kind = generation.KindSummary
	}

	client, err := llm.NewClient(r.Context(), nil, s.apiKey)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "LLM client error: "+err.Error())
		return
	}
	defer func() { _ = client.Close() }()

	result, err := generation.Generate(r.Context(), client, resume.Parsed, req.JobText, kind)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Generation failed: "+err.Error())
		return
	}

	if _, err := s.db.SaveReport(r.Context(), id, result.Text, result.Report); err != nil {
		// The document was produced; losing the stored report is not fatal.
		log.Printf("Failed to save generation report: %v", err)
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// pathUUID parses the given path parameter as a UUID, writing the error
// response itself on failure.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	idStr := r.PathValue(name)
	if idStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "Resume ID is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID format")
		return uuid.Nil, false
	}
	return id, true
}
