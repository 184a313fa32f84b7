package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	jwttoken "licensedecoder/internal/jwt_token"
	"licensedecoder/internal/license"
	licensemetrics "licensedecoder/internal/license/metrics"
	"licensedecoder/internal/platform/config"
	"licensedecoder/internal/platform/httpserver"
	"licensedecoder/internal/platform/logger"
	"licensedecoder/internal/platform/metrics"
	"licensedecoder/internal/platform/middleware"
	"licensedecoder/pkg/platform/httputil"
	"licensedecoder/pkg/platform/middleware/metadata"
)

const shutdownTimeout = 10 * time.Second

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Decoding lives in pkg/aamva and internal/license.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	router := newRouter(cfg, log, metrics.New(), licensemetrics.New())
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting license decoder",
		"addr", cfg.Addr,
		"auth_enabled", cfg.JWTSigningKey != "",
		"require_dates", cfg.License.RequireDates,
		"max_batch", cfg.License.MaxBatch,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func newRouter(cfg config.Server, log *slog.Logger, httpMetrics *metrics.Metrics, licenseMetrics *licensemetrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(log))
	r.Use(middleware.LatencyMiddleware(httpMetrics))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	svc := license.NewService(cfg.License, log, licenseMetrics)
	h := license.NewHandler(svc, log)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
		r.Use(middleware.ContentTypeJSON)
		if cfg.JWTSigningKey != "" {
			jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTIssuer)
			r.Use(middleware.RequireAuth(jwttoken.NewJWTServiceAdapter(jwtService), log))
		}
		h.Register(r)
	})
	return r
}
