package content

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// PuzzleSource provides puzzle rows for the self-hosted content server.
// Implemented by the sqlite store.
type PuzzleSource interface {
	PuzzlesByGame(game string, limit int) ([]Puzzle, error)
}

// Server serves the local puzzle table over the same REST-like query shape
// the client consumes, so an arcade install can act as its own content host.
type Server struct {
	source PuzzleSource
	apiKey string
}

// NewServer creates a content server over the given puzzle source.
// If apiKey is non-empty, requests must carry it in the "apikey" header.
func NewServer(source PuzzleSource, apiKey string) *Server {
	return &Server{source: source, apiKey: apiKey}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Heartbeat("/health"))

	r.Get("/rest/v1/puzzles", s.handlePuzzles)

	return r
}

// handlePuzzles answers table reads: GET /rest/v1/puzzles?game=eq.<id>&limit=<n>
func (s *Server) handlePuzzles(w http.ResponseWriter, r *http.Request) {
	if s.apiKey != "" && r.Header.Get("apikey") != s.apiKey {
		s.writeError(w, http.StatusUnauthorized, "missing or invalid api key")
		return
	}

	game := strings.TrimPrefix(r.URL.Query().Get("game"), "eq.")
	if game == "" {
		s.writeError(w, http.StatusBadRequest, "game filter is required")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	puzzles, err := s.source.PuzzlesByGame(game, limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "cannot read puzzles")
		return
	}
	if puzzles == nil {
		puzzles = []Puzzle{}
	}

	s.writeJSON(w, http.StatusOK, puzzles)
}

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Response write failures are the client's problem
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
