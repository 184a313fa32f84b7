package handler

import (
	"licensedecoder/internal/license/service"
	dErrors "licensedecoder/pkg/domain-errors"
)

// MaxBarcodeBytes bounds a single barcode payload.
const MaxBarcodeBytes = service.MaxBarcodeBytes

// DecodeRequest is the HTTP request body for POST /licenses/decode and
// POST /licenses/inspect.
type DecodeRequest struct {
	// Barcode is the scanner's text output, control characters included.
	Barcode string `json:"barcode"`
}

// Validate checks the request. The barcode is not trimmed: header offsets
// count from the first byte.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *DecodeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return service.ValidateBarcode("barcode", r.Barcode)
}

// BatchDecodeRequest is the HTTP request body for POST /licenses/decode/batch.
type BatchDecodeRequest struct {
	Barcodes []string `json:"barcodes"`
}

// Validate only requires a non-empty batch. Per-barcode checks and the batch
// size limit are enforced by the service so one bad item fails alone.
func (r *BatchDecodeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Barcodes) == 0 {
		return dErrors.New(dErrors.CodeValidation, "barcodes is required")
	}
	return nil
}
