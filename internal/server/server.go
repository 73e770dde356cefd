// Package server exposes the validation engine over a small JSON HTTP
// API. Input bounds are enforced here, outside the engine: the engine
// itself imposes no document length cap.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/siherrmann/reqcheck"
	"github.com/siherrmann/reqcheck/model"
)

// ValidationRequest is the request body of POST /api/validate
type ValidationRequest struct {
	Document   string   `json:"document"`
	FocusAreas []string `json:"focus_areas,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server serves validation requests over HTTP
type Server struct {
	validator *reqcheck.Validator
	config    *model.ValidatorConfig
	log       *slog.Logger
}

// NewServer creates a server around an initialized validator
func NewServer(validator *reqcheck.Validator, logger *slog.Logger) *Server {
	return &Server{
		validator: validator,
		config:    validator.Config,
		log:       logger,
	}
}

// Handler returns the route mux for the API
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/validate", s.handleValidate)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start listens on addr until the listener fails
func (s *Server) Start(addr string) error {
	s.log.Info("Validation server listening", slog.String("addr", addr))
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondJSON(w, errorResponse{Error: "method not allowed"}, http.StatusMethodNotAllowed)
		return
	}

	var request ValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondJSON(w, errorResponse{Error: "invalid request body: " + err.Error()}, http.StatusBadRequest)
		return
	}

	if err := s.config.CheckDocumentBounds(request.Document); err != nil {
		respondJSON(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
		return
	}

	validationReport := s.validator.Validate(request.Document, request.FocusAreas)
	respondJSON(w, validationReport, http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func respondJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
