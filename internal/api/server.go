// Package api exposes the analysis service over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hyppe-labs/scoriz/internal/model"
	"github.com/hyppe-labs/scoriz/internal/store"
)

// Analyzer produces a complete report for one URL.
type Analyzer interface {
	Analyze(ctx context.Context, targetURL, lang string) (model.AnalysisResult, error)
}

// ContactSink records a newsletter signup.
type ContactSink interface {
	Capture(ctx context.Context, email string) error
}

// Server routes HTTP requests to the analysis, contact, and archive
// operations. The analyzer and contact sink may be nil when their
// credentials are not configured; their endpoints then report the
// configuration error per request instead of failing startup.
type Server struct {
	router   *chi.Mux
	store    store.Store
	ledger   *store.Ledger
	analyzer Analyzer
	contacts ContactSink
	now      func() time.Time
}

// NewServer wires the router and handlers.
func NewServer(st store.Store, ledger *store.Ledger, analyzer Analyzer, contacts ContactSink) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		store:    st,
		ledger:   ledger,
		analyzer: analyzer,
		contacts: contacts,
		now:      time.Now,
	}

	r := s.router
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)
	r.Route("/api", func(r chi.Router) {
		r.Post("/analyse", s.analyse)
		r.Post("/contact", s.contact)
		r.Get("/analyses", s.listAnalyses)
		r.Delete("/analyses/{id}", s.deleteAnalysis)
		r.Get("/analyses/{id}/export", s.exportAnalysis)
		r.Get("/usage", s.usage)
	})

	return s
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.router
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
