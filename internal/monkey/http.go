package monkey

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"MonkeyApp/pkg/kit"
)

const readyTimeout = 2 * time.Second

type Server struct {
	Catalog *Service
	Log     *zap.Logger

	// RandomLimiter throttles /monkeys/random when set.
	RandomLimiter *kit.IPRateLimiter
}

type countResp struct {
	AccessCount int64 `json:"access_count"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", kit.Healthz)
	r.Get("/readyz", s.readyz)

	r.Route("/monkeys", func(rr chi.Router) {
		rr.Get("/", s.list)
		rr.Group(func(g chi.Router) {
			if s.RandomLimiter != nil {
				g.Use(s.RandomLimiter.Middleware)
			}
			g.Get("/random", s.random)
		})
		rr.Get("/random/count", s.count)
		rr.Get("/{name}", s.get)
		// /monkeys/random is taken by the random pick; this path reaches any name.
		rr.Get("/by-name/{name}", s.get)
	})

	return r
}

// readyz triggers the first load so a failing source keeps the instance out of rotation.
func (s *Server) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if _, err := s.Catalog.Store().EnsureLoaded(ctx); err != nil {
		s.logger().Warn("readyz failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	all, err := s.Catalog.List(r.Context())
	if err != nil {
		s.writeErr(w, r, err, nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, all)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	m, err := s.Catalog.FindByName(r.Context(), name)
	if err != nil {
		s.writeErr(w, r, err, map[string]any{"name": name})
		return
	}
	kit.WriteJSON(w, http.StatusOK, m)
}

func (s *Server) random(w http.ResponseWriter, r *http.Request) {
	m, err := s.Catalog.PickRandom(r.Context())
	if err != nil {
		s.writeErr(w, r, err, nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, m)
}

func (s *Server) count(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, countResp{AccessCount: s.Catalog.AccessCount()})
}

func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, err error, details any) {
	switch {
	case errors.Is(err, ErrNotFound):
		kit.WriteError(w, r, http.StatusNotFound, "not found", details)
	case errors.Is(err, ErrEmptyCatalog):
		kit.WriteError(w, r, http.StatusNotFound, "catalog is empty", nil)
	case errors.Is(err, ErrLoadFailure):
		s.logger().Error("catalog unavailable", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog unavailable", nil)
	default:
		s.logger().Error("request failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
	}
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}
