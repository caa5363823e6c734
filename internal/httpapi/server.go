// Package httpapi exposes a sift.SearchEngine over HTTP: a search endpoint,
// a query-completion endpoint, a liveness probe, and Prometheus metrics.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/sahilm/fuzzy"

	"github.com/siftsearch/sift"
)

const snippetLength = 200

var (
	searchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sift_searches_total",
		Help: "Total number of /search requests served.",
	})
	searchLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "sift_search_duration_seconds",
		Help: "Latency of /search requests.",
	})
)

// Server wraps a sift.SearchEngine with an HTTP surface.
type Server struct {
	engine *sift.SearchEngine
	docIDs []string // sorted, for /suggest
	logger zerolog.Logger
}

// New builds a Server over engine. docIDs is the full set of DocumentIds in
// the corpus, used by /suggest.
func New(engine *sift.SearchEngine, docIDs []string, logger zerolog.Logger) *Server {
	return &Server{engine: engine, docIDs: docIDs, logger: logger}
}

// Router builds the chi router for this server.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(middleware.Recoverer)

	r.Get("/search", s.handleSearch)
	r.Get("/suggest", s.handleSuggest)
	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// requestID stamps every request with a UUID and logs it, mirroring the
// security-conscious middleware chain a production HTTP surface carries.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		s.logger.Info().Str("requestId", id).Str("path", r.URL.Path).Msg("http request")
		next.ServeHTTP(w, r)
	})
}

type searchResultDTO struct {
	DocID   string  `json:"doc_id"`
	Score   float64 `json:"score"`
	Snippet string  `json:"snippet"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		searchesTotal.Inc()
		searchLatency.Observe(time.Since(start).Seconds())
	}()

	query := r.URL.Query().Get("q")
	limit := queryInt(r, "limit", 10)
	offset := queryInt(r, "offset", 0)

	results, err := s.engine.Search(query, limit, offset)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]searchResultDTO, len(results))
	for i, res := range results {
		out[i] = searchResultDTO{DocID: res.DocID, Score: res.Score, Snippet: snippet(res.Text)}
	}
	writeJSON(w, http.StatusOK, out)
}

// handleSuggest completes a partial query against known DocumentIds:
// substring match first, fuzzy match as a fallback, and a fixed echo
// suggestion (query+" example", query+" test") when even fuzzy finds
// nothing — the exact fallback chain the Python reference API used.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusOK, []string{})
		return
	}

	var matches []string
	lower := strings.ToLower(q)
	for _, id := range s.docIDs {
		if strings.Contains(strings.ToLower(id), lower) {
			matches = append(matches, id)
		}
	}

	if len(matches) == 0 {
		for _, m := range fuzzy.Find(q, s.docIDs) {
			matches = append(matches, s.docIDs[m.Index])
		}
	}

	if len(matches) == 0 {
		matches = []string{q + " example", q + " test"}
	}

	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sift.ErrInvalidArgument), errors.Is(err, sift.ErrMalformedQuery):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// snippet truncates to snippetLength characters, replaces newlines with
// spaces, and appends "..." when the text was truncated.
func snippet(text string) string {
	runes := []rune(text)
	truncated := len(runes) > snippetLength
	if truncated {
		runes = runes[:snippetLength]
	}
	for i, r := range runes {
		if r == '\n' {
			runes[i] = ' '
		}
	}
	out := string(runes)
	if truncated {
		out += "..."
	}
	return out
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
