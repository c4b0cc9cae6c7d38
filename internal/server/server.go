// Package server exposes the store and the quiz builder as a read-only HTTP
// API plus an HTML detail view.
package server

import (
	"encoding/json"
	htmltemplate "html/template"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/tatdt622989/japanese-word-display/internal/quiz"
	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
)

// Server handles the word and quiz endpoints.
type Server struct {
	store          *vocabulary.Store
	builder        *quiz.Builder
	detailTemplate *htmltemplate.Template
	logger         *slog.Logger
}

// New creates a server over the given store and builder.
func New(
	store *vocabulary.Store,
	builder *quiz.Builder,
	detailTemplate *htmltemplate.Template,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:          store,
		builder:        builder,
		detailTemplate: detailTemplate,
		logger:         logger,
	}
}

// Handler returns the routed handler with request logging and CORS applied.
func (s *Server) Handler(allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/words/random", s.handleRandomWord)
	mux.HandleFunc("GET /api/words/{id}", s.handleWordByID)
	mux.HandleFunc("GET /api/quiz", s.handleQuiz)
	mux.HandleFunc("GET /words/{id}", s.handleWordDetail)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		MaxAge:         3600,
	})
	return corsHandler.Handler(s.withRequestLogging(mux))
}

func (s *Server) handleRandomWord(w http.ResponseWriter, r *http.Request) {
	word := s.store.PickRandom()
	if word == nil {
		s.writeError(w, http.StatusServiceUnavailable, "no vocabulary is loaded")
		return
	}
	s.writeJSON(w, http.StatusOK, word)
}

func (s *Server) handleWordByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	word := s.store.GetByID(id)
	if word == nil {
		s.writeError(w, http.StatusNotFound, "word not found")
		return
	}
	s.writeJSON(w, http.StatusOK, word)
}

func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	var question *quiz.Question
	if r.URL.Query().Get("type") == "example" {
		question = s.builder.BuildExampleQuestion()
		if question == nil {
			s.writeError(w, http.StatusServiceUnavailable, "no word with examples is loaded")
			return
		}
	} else {
		question = s.builder.Build()
		if question == nil {
			s.writeError(w, http.StatusServiceUnavailable, "no vocabulary is loaded")
			return
		}
	}
	s.writeJSON(w, http.StatusOK, question)
}

func (s *Server) handleWordDetail(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	word := s.store.GetByID(id)
	if word == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.detailTemplate.Execute(w, word); err != nil {
		s.logger.Error("failed to render the word detail view",
			"wordID", id,
			"error", err,
		)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSON(w, statusCode, errorResponse{Error: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode a response", "error", err)
	}
}
