package server

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/pensionmodeler/pension-modeler/internal/calculation"
	"github.com/pensionmodeler/pension-modeler/internal/config"
)

// Server exposes the calculator over HTTP. Every request is evaluated independently; the
// engine and parser are shared read-only.
type Server struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	logger logrus.FieldLogger
}

// New creates a server. A nil logger discards request logs.
func New(engine *calculation.CalculationEngine, parser *config.InputParser, logger logrus.FieldLogger) *Server {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Server{engine: engine, parser: parser, logger: logger}
}

// Router builds the route table.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestLogger)

	r.HandleFunc("/healthz", s.allow(http.MethodGet, s.Health))

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/defaults", s.allow(http.MethodGet, s.Defaults))
	api.HandleFunc("/projection", s.allow(http.MethodPost, s.Projection))
	api.HandleFunc("/scenarios.csv", s.allow(http.MethodPost, s.ScenariosCSV))
	api.HandleFunc("/report.pdf", s.allow(http.MethodPost, s.ReportPDF))
	return r
}

// allow restricts a route to one method. Routes are registered without mux method
// matchers so every path answers other methods with 405 rather than falling through to 404.
func (s *Server) allow(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h(w, r)
	}
}

// NewHTTPServer wires the router into an http.Server with the configured timeouts.
func (s *Server) NewHTTPServer(cfg *Config) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
