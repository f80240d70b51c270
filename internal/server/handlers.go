package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-parser/internal/consistency"
	"github.com/jonathan/resume-parser/internal/types"
)

// ParseResponse represents the response for /parse.
type ParseResponse struct {
	Resume *types.ParsedResume `json:"resume"`
}

// handleParse parses resume text without persisting it.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req types.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	resume, err := s.parser.Parse(req.Text)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Parse failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ParseResponse{Resume: resume})
}

// handleCheck runs a stateless consistency check: the caller supplies both
// the source resume record and the generated text.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req types.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	report := consistency.Check(req.Resume, req.GeneratedText)
	s.jsonResponse(w, http.StatusOK, report)
}
