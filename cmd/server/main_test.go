package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwttoken "licensedecoder/internal/jwt_token"
	licensemetrics "licensedecoder/internal/license/metrics"
	"licensedecoder/internal/platform/config"
	"licensedecoder/internal/platform/metrics"
	"licensedecoder/pkg/aamva/aamvatest"
)

func testRouter(t *testing.T, cfg config.Server) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newRouter(cfg, log, metrics.NewWithRegisterer(reg), licensemetrics.NewWithRegisterer(reg))
}

func baseConfig() config.Server {
	return config.Server{
		RequestTimeout: time.Second,
		JWTIssuer:      config.DefaultIssuer,
		License: config.License{
			MaxBatch:         config.DefaultMaxBatch,
			BatchConcurrency: config.DefaultBatchConcurrency,
		},
	}
}

func decodeRequest(t *testing.T, barcode string) *http.Request {
	t.Helper()
	body, err := json.Marshal(map[string]string{"barcode": barcode})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/licenses/decode", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRouter(t *testing.T) {
	t.Run("healthz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		testRouter(t, baseConfig()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("decode without auth", func(t *testing.T) {
		rec := httptest.NewRecorder()
		testRouter(t, baseConfig()).ServeHTTP(rec, decodeRequest(t, aamvatest.Arizona()))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		assert.Contains(t, rec.Body.String(), `"lastName":"LEE"`)
	})

	t.Run("rejects non-json content type", func(t *testing.T) {
		req := decodeRequest(t, aamvatest.Arizona())
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		testRouter(t, baseConfig()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("require dates policy", func(t *testing.T) {
		cfg := baseConfig()
		cfg.License.RequireDates = true
		raw := aamvatest.Barcode("AAMVA", 8, "DAADONG LEE", "DAU069")
		rec := httptest.NewRecorder()
		testRouter(t, cfg).ServeHTTP(rec, decodeRequest(t, raw))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "validation_error")
	})

	t.Run("auth enabled", func(t *testing.T) {
		cfg := baseConfig()
		cfg.JWTSigningKey = "test-signing-key"
		router := testRouter(t, cfg)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, decodeRequest(t, aamvatest.Arizona()))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		token, err := jwttoken.NewJWTService(cfg.JWTSigningKey, cfg.JWTIssuer, cfg.JWTIssuer).
			GenerateAccessToken("scanner-7", time.Minute)
		require.NoError(t, err)
		req := decodeRequest(t, aamvatest.Arizona())
		req.Header.Set("Authorization", "Bearer "+token)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
