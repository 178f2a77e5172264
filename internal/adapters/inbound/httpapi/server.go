package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/abdidvp/siteaudit/internal/domain"
)

// Auditor is the application surface the HTTP API drives.
type Auditor interface {
	Audit(ctx context.Context, req domain.AuditRequest) (domain.AuditReport, error)
	History(ctx context.Context, limit int) ([]domain.Event, error)
}

// Server exposes the audit service over HTTP.
type Server struct {
	auditor  Auditor
	cfg      domain.ServerConfig
	log      logrus.FieldLogger
	limiters *clientLimiters
}

func New(auditor Auditor, cfg domain.ServerConfig, log logrus.FieldLogger) *Server {
	return &Server{
		auditor:  auditor,
		cfg:      cfg,
		log:      log,
		limiters: newClientLimiters(cfg.RateLimit, cfg.RateBurst),
	}
}

// Routes returns the fully wired handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	if s.cfg.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Use(s.rateLimit)
		r.Post("/audit", s.handleAudit)
		r.Get("/audits", s.handleListAudits)
	})

	return cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.WithField("addr", addr).Info("listening")

	select {
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
