package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/andrescamacho/shipfix-go/internal/adapters/metrics"
	"github.com/andrescamacho/shipfix-go/internal/infrastructure/config"
)

const (
	ServiceName = "shipfix-api"
	APIName     = "ShipFix Tracker API"
	APIVersion  = "0.1.0"
)

// BannerResponse is served at the root route
type BannerResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// HealthResponse is served at /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Server is the companion HTTP health service. It shares no state with the vessel registry.
type Server struct {
	cfg         config.ServerConfig
	metricsPath string
	logger      *slog.Logger
	httpMetrics *metrics.HTTPMetricsCollector
	httpServer  *http.Server
}

// NewServer builds the server and its router. metricsPath is empty when metrics are disabled.
func NewServer(cfg config.ServerConfig, metricsPath string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		cfg:         cfg,
		metricsPath: metricsPath,
		logger:      logger.With("component", "http"),
		httpMetrics: metrics.NewHTTPMetricsCollector(),
	}

	s.httpServer = &http.Server{
		Handler:      s.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Routes returns the fully assembled handler
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(s.httpMetrics.Instrument)
	r.Use(CORS(s.cfg.CORSOrigins))
	r.Use(RateLimit(s.cfg.RateLimit, s.httpMetrics))

	r.Get("/", s.handleBanner)
	r.Get("/health", s.handleHealth)
	if s.metricsPath != "" {
		r.Handle(s.metricsPath, metrics.Handler())
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})

	return r
}

func (s *Server) handleBanner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, BannerResponse{Name: APIName, Version: APIVersion, Docs: "/health"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Service: ServiceName})
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("http server shutting down")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// ListenAndServe binds the configured address and serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Address(), err)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
