package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/ats-analyzer/internal/analysis"
	"github.com/jonathan/ats-analyzer/internal/ats"
	"github.com/jonathan/ats-analyzer/internal/extract"
	"github.com/jonathan/ats-analyzer/internal/fetch"
	"github.com/jonathan/ats-analyzer/internal/llm"
)

// maxUploadBytes caps the multipart form size for resume uploads.
const maxUploadBytes = 10 << 20

// minResumeChars is the minimum resume length accepted for analysis.
const minResumeChars = 50

// AnalyzeResponse is the response body for /analyze.
type AnalyzeResponse struct {
	Result          string `json:"result"`
	Success         bool   `json:"success"`
	CalculatedScore int    `json:"calculatedScore"`
}

// handleAnalyze scores a resume against a job description and returns
// the LLM-generated analysis report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	resumeText, jobDescription, ok := s.analyzeInputs(w, r)
	if !ok {
		return
	}

	result, err := analysis.Generate(r.Context(), s.llm, resumeText, jobDescription)
	if err != nil {
		switch {
		case llm.IsRateLimited(err):
			s.errorResponse(w, http.StatusTooManyRequests, "API quota exceeded. Please try again later.")
		case llm.IsAuthError(err):
			s.errorResponse(w, http.StatusUnauthorized, "Invalid API key.")
		default:
			log.Printf("Analysis failed: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Internal server error. Please try again.")
		}
		return
	}

	if s.db != nil {
		if _, err := s.db.SaveAnalysis(r.Context(), jobDescription, resumeText, result.Score, result.Report); err != nil {
			// Persistence is best-effort; the analysis is still returned.
			log.Printf("Failed to save analysis: %v", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		Result:          result.Report,
		Success:         true,
		CalculatedScore: result.Score,
	})
}

// handleAnalyzeBreakdown returns the score and its sub-scores without
// calling the LLM. Used for diagnostics and UI display.
func (s *Server) handleAnalyzeBreakdown(w http.ResponseWriter, r *http.Request) {
	resumeText, jobDescription, ok := s.analyzeInputs(w, r)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, ats.GetDetailedAnalysis(resumeText, jobDescription))
}

// analyzeInputs parses and validates the analyze form. It resolves the
// job description from the jobDescription field or a jobUrl fetch, and
// the resume text from the resumeText field or an uploaded PDF. On
// failure it writes the error response and returns ok=false.
func (s *Server) analyzeInputs(w http.ResponseWriter, r *http.Request) (resumeText, jobDescription string, ok bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid form data: "+err.Error())
		return "", "", false
	}

	jobDescription = strings.TrimSpace(r.FormValue("jobDescription"))
	if jobDescription == "" {
		if jobURL := strings.TrimSpace(r.FormValue("jobUrl")); jobURL != "" {
			text, err := fetch.JobDescription(r.Context(), jobURL, nil)
			if err != nil {
				log.Printf("Job description fetch failed: %v", err)
				s.errorResponse(w, http.StatusBadRequest, "Failed to fetch job description from URL.")
				return "", "", false
			}
			jobDescription = text
		}
	}
	if jobDescription == "" {
		s.errorResponse(w, http.StatusBadRequest, "Job description is required")
		return "", "", false
	}

	resumeText = strings.TrimSpace(r.FormValue("resumeText"))
	if file, header, err := r.FormFile("resume"); err == nil {
		defer func() { _ = file.Close() }()
		text, extractErr := extract.PDFText(file, header.Size)
		if extractErr != nil {
			log.Printf("Resume extraction failed: %v", extractErr)
			s.errorResponse(w, http.StatusBadRequest, "Failed to extract text from the uploaded PDF. Please upload a text-based PDF.")
			return "", "", false
		}
		resumeText = text
	}
	if len(resumeText) < minResumeChars {
		s.errorResponse(w, http.StatusBadRequest, "Resume text is required and must contain sufficient content (at least 50 characters).")
		return "", "", false
	}

	return resumeText, jobDescription, true
}

// handleGetAnalysis returns a persisted analysis by ID.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID format")
		return
	}

	record, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "Analysis not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// handleListAnalyses returns the most recent persisted analyses.
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence is not configured")
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > 100 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	analyses, err := s.db.ListAnalyses(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"analyses": analyses})
}

// handleContact validates and persists a contact form submission.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Persistence is not configured")
		return
	}

	if _, err := s.db.SaveContact(r.Context(), req.Name, req.Email, req.Subject, req.Message); err != nil {
		log.Printf("Failed to save contact message: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Internal server error. Please try again later.")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Message sent successfully! I'll get back to you soon.",
	})
}
