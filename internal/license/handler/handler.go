package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"licensedecoder/internal/license/service"
	"licensedecoder/pkg/aamva"
	"licensedecoder/pkg/platform/httputil"
	"licensedecoder/pkg/requestcontext"
)

// Service defines the interface for license decode operations.
type Service interface {
	Decode(ctx context.Context, raw string) (*aamva.License, error)
	DecodeBatch(ctx context.Context, raws []string) ([]service.BatchResult, error)
	Inspect(ctx context.Context, raw string) (*service.Inspection, error)
}

// Handler wires license endpoints to the license service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a license handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts license endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/licenses/decode", h.HandleDecode)
	r.Post("/licenses/decode/batch", h.HandleDecodeBatch)
	r.Post("/licenses/inspect", h.HandleInspect)
}

// HandleDecode handles POST /licenses/decode requests.
func (h *Handler) HandleDecode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[DecodeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	lic, err := h.service.Decode(ctx, req.Barcode)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "decode request served",
		"request_id", requestID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, lic.Record())
}

// HandleDecodeBatch handles POST /licenses/decode/batch requests.
func (h *Handler) HandleDecodeBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[BatchDecodeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	results, err := h.service.DecodeBatch(ctx, req.Barcodes)
	if err != nil {
		h.logger.WarnContext(ctx, "batch decode failed",
			"request_id", requestID,
			"batch_size", len(req.Barcodes),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	resp := FromBatchResults(results)
	h.logger.InfoContext(ctx, "batch decode served",
		"request_id", requestID,
		"batch_size", len(req.Barcodes),
		"failed", resp.Failed,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleInspect handles POST /licenses/inspect requests.
func (h *Handler) HandleInspect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[DecodeRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	out, err := h.service.Inspect(ctx, req.Barcode)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromInspection(out))
}
