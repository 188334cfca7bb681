package server

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/pensionmodeler/pension-modeler/internal/domain"
	"github.com/pensionmodeler/pension-modeler/internal/output"
)

const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Health reports liveness.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Defaults returns the example configuration a client can edit and post back.
func (s *Server) Defaults(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.parser.CreateExampleConfiguration())
}

// Projection evaluates a configuration and returns the full report.
func (s *Server) Projection(w http.ResponseWriter, r *http.Request) {
	report, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// ScenariosCSV evaluates a configuration and returns the scenario table as a download.
func (s *Server) ScenariosCSV(w http.ResponseWriter, r *http.Request) {
	report, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	data, err := output.WriteScenarioCSV(report.Scenarios)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, fmt.Errorf("failed to encode CSV: %w", err))
		return
	}
	s.writeAttachment(w, "text/csv; charset=utf-8", output.ScenarioCSVFilename, data)
}

// ReportPDF evaluates a configuration and returns the PDF report.
func (s *Server) ReportPDF(w http.ResponseWriter, r *http.Request) {
	report, ok := s.evaluate(w, r)
	if !ok {
		return
	}
	data, err := output.PDFFormatter{}.Format(report)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, fmt.Errorf("failed to render PDF: %w", err))
		return
	}
	s.writeAttachment(w, "application/pdf", "pension_report.pdf", data)
}

// evaluate decodes, defaults, validates and evaluates the request body. On failure it has
// already written the error response.
func (s *Server) evaluate(w http.ResponseWriter, r *http.Request) (*domain.Report, bool) {
	var cfg domain.Configuration
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&cfg); err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return nil, false
	}

	s.parser.ApplyDefaults(&cfg)
	if err := s.parser.ValidateConfiguration(&cfg); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return nil, false
	}

	report, err := s.engine.Evaluate(&cfg)
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return nil, false
	}
	return report, true
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.logger.WithError(err).Warn("request rejected")
	s.writeError(w, status, err.Error())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to write JSON response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Status: status, Message: message})
}

func (s *Server) writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.WithError(err).WithField("filename", filename).Error("failed to write attachment")
	}
}
