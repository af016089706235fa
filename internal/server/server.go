// Package server implements the dyeseq HTTP API.
//
// The API is a thin boundary over the search core and the store: it
// validates incoming colors and bounds, resolves configured defaults,
// invokes the search with explicit parameters and persists the outcome.
// All responses are JSON; errors carry the machine-readable code from
// pkg/errors.
//
// # Routes
//
//	POST   /api/v1/search        run a search, append to history
//	GET    /api/v1/history       recent searches, newest first
//	GET    /api/v1/saved         saved results
//	POST   /api/v1/saved         run a search and save the result
//	DELETE /api/v1/saved/{id}    delete a saved result
//	GET    /api/v1/presets       base color presets
//	POST   /api/v1/presets       create a preset
//	DELETE /api/v1/presets/{id}  delete a preset
//	GET    /healthz              liveness probe
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tintlab/dyeseq/pkg/config"
	"github.com/tintlab/dyeseq/pkg/observability"
	"github.com/tintlab/dyeseq/pkg/store"
)

// Server holds the dependencies of the HTTP API.
type Server struct {
	cfg    config.Config
	store  store.Store
	logger *log.Logger
}

// New creates a server over the given configuration and store.
// If logger is nil, the default logger is used.
func New(cfg config.Config, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, store: st, logger: logger}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/search", s.handleSearch)
		r.Get("/history", s.handleHistory)
		r.Get("/saved", s.handleSavedList)
		r.Post("/saved", s.handleSavedCreate)
		r.Delete("/saved/{id}", s.handleSavedDelete)
		r.Get("/presets", s.handlePresetList)
		r.Post("/presets", s.handlePresetCreate)
		r.Delete("/presets/{id}", s.handlePresetDelete)
	})

	return r
}

// requestLogger logs each request with its status and duration and
// forwards the events to the registered HTTP hooks.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", duration.Round(time.Millisecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
