package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"licensedecoder/internal/license/metrics"
	"licensedecoder/pkg/aamva"
	dErrors "licensedecoder/pkg/domain-errors"
	"licensedecoder/pkg/requestcontext"
)

const (
	defaultMaxBatch         = 100
	defaultBatchConcurrency = 8
)

// MaxBarcodeBytes bounds a single barcode payload. PDF417 symbols on licenses
// carry well under 2 KiB of text.
const MaxBarcodeBytes = 8 << 10

// ValidateBarcode rejects blank or oversized barcode text; name labels the
// offending input in the error message. The text itself is not trimmed.
func ValidateBarcode(name, barcode string) error {
	if len(barcode) > MaxBarcodeBytes {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s must be at most %d bytes", name, MaxBarcodeBytes))
	}
	if strings.TrimSpace(barcode) == "" {
		return dErrors.New(dErrors.CodeValidation, name+" is required")
	}
	return nil
}

// Service decodes barcode text for callers that already hold the scanner
// output. It adds policy, metrics and error translation around pkg/aamva.
type Service struct {
	logger           *slog.Logger
	metrics          *metrics.Metrics
	requireDates     bool
	maxBatch         int
	batchConcurrency int
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the metrics sink. Nil disables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithRequireDates rejects records that decode without a date of birth or an
// expiration date.
func WithRequireDates(require bool) Option {
	return func(s *Service) { s.requireDates = require }
}

// WithMaxBatch caps the number of barcodes accepted by DecodeBatch.
func WithMaxBatch(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBatch = n
		}
	}
}

// WithBatchConcurrency bounds the goroutines used by DecodeBatch.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

// New constructs the license service.
func New(opts ...Option) *Service {
	s := &Service{
		logger:           slog.Default(),
		maxBatch:         defaultMaxBatch,
		batchConcurrency: defaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Decode decodes one barcode. Failures come back as coded domain errors that
// still wrap the underlying aamva error.
func (s *Service) Decode(ctx context.Context, raw string) (*aamva.License, error) {
	if err := ctx.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "decode aborted: context cancelled")
	}
	requestID := requestcontext.RequestID(ctx)

	start := time.Now()
	lic, err := aamva.Decode(raw)
	s.metrics.ObserveDecodeLatency(time.Since(start))
	if err != nil {
		outcome, translated := translateDecodeError(err)
		s.metrics.IncrementOutcome(outcome)
		s.logger.WarnContext(ctx, "license decode failed",
			"request_id", requestID,
			"outcome", outcome,
			"reason", translated.Message,
		)
		return nil, translated
	}

	h := lic.Header()
	s.metrics.IncrementHeaderVersion(h.VersionNumber)

	if err := s.checkRequiredDates(lic.Record()); err != nil {
		s.metrics.IncrementOutcome(metrics.OutcomeRejected)
		s.logger.WarnContext(ctx, "license rejected by date policy",
			"request_id", requestID,
			"issuer", h.IssuerIdentificationNumber,
			"reason", err.Message,
		)
		return nil, err
	}

	s.metrics.IncrementOutcome(metrics.OutcomeOK)
	s.logger.InfoContext(ctx, "license decoded",
		"request_id", requestID,
		"client_id", requestcontext.ClientID(ctx),
		"issuer", h.IssuerIdentificationNumber,
		"version", h.VersionNumber,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return lic, nil
}

func (s *Service) checkRequiredDates(rec aamva.Record) *dErrors.Error {
	if !s.requireDates {
		return nil
	}
	switch {
	case rec.DOB.IsZero():
		return dErrors.New(dErrors.CodeValidation, "barcode has no date of birth")
	case rec.LicenseExpirationDate.IsZero():
		return dErrors.New(dErrors.CodeValidation, "barcode has no license expiration date")
	}
	return nil
}

// translateDecodeError maps aamva errors to an outcome label and a client-safe
// coded error. Raw field values never reach the message.
func translateDecodeError(err error) (string, *dErrors.Error) {
	var (
		fieldErr *aamva.FieldParseError
		dateErr  *aamva.DateParseError
	)
	switch {
	case errors.Is(err, aamva.ErrFormat):
		return metrics.OutcomeFormat, dErrors.Wrap(err, dErrors.CodeInvalidInput, "barcode header or subfile layout is malformed")
	case errors.As(err, &fieldErr):
		return metrics.OutcomeFieldError, dErrors.Wrap(err, dErrors.CodeInvalidInput,
			fmt.Sprintf("barcode field %s is missing or not numeric", fieldErr.Field))
	case errors.As(err, &dateErr):
		return metrics.OutcomeDateError, dErrors.Wrap(err, dErrors.CodeInvalidInput,
			fmt.Sprintf("barcode field %s is not a valid yyyyMMdd date", dateErr.Field))
	default:
		return metrics.OutcomeInternal, dErrors.Wrap(err, dErrors.CodeInternal, "barcode decode failed")
	}
}

// BatchResult is the outcome of one barcode in a batch. Exactly one of
// License and Err is set.
type BatchResult struct {
	Index   int
	License *aamva.License
	Err     error
}

// DecodeBatch decodes every barcode independently and concurrently. A blank,
// oversized or undecodable barcode only fails its own result; the call itself
// fails for empty or oversized batches and for cancelled contexts.
func (s *Service) DecodeBatch(ctx context.Context, raws []string) ([]BatchResult, error) {
	if len(raws) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "at least one barcode is required")
	}
	if len(raws) > s.maxBatch {
		return nil, dErrors.New(dErrors.CodeValidation, fmt.Sprintf("at most %d barcodes per batch", s.maxBatch))
	}
	s.metrics.ObserveBatchSize(len(raws))

	results := make([]BatchResult, len(raws))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i, raw := range raws {
		if err := ValidateBarcode(fmt.Sprintf("barcodes[%d]", i), raw); err != nil {
			s.metrics.IncrementOutcome(metrics.OutcomeRejected)
			results[i] = BatchResult{Index: i, Err: err}
			continue
		}
		g.Go(func() error {
			lic, err := s.Decode(gctx, raw)
			results[i] = BatchResult{Index: i, License: lic, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "batch aborted: context cancelled")
	}
	return results, nil
}

// Inspection exposes every decode stage for diagnostics.
type Inspection struct {
	Header aamva.Header
	Fields aamva.RawFields

	// Record is nil when normalization failed; RecordErr then says why.
	Record    *aamva.Record
	RecordErr error
}

// Inspect returns the header and raw field map even when the fields do not
// normalize into a record. Header and subfile failures are still errors.
func (s *Service) Inspect(ctx context.Context, raw string) (*Inspection, error) {
	if err := ctx.Err(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeTimeout, "inspect aborted: context cancelled")
	}

	h, err := aamva.DecodeHeader(raw)
	if err != nil {
		_, translated := translateDecodeError(err)
		return nil, translated
	}
	fields, err := aamva.ExtractFields(raw, h)
	if err != nil {
		_, translated := translateDecodeError(err)
		return nil, translated
	}

	out := &Inspection{Header: h, Fields: fields}
	rec, err := aamva.Normalize(fields)
	if err != nil {
		_, out.RecordErr = translateDecodeError(err)
	} else {
		out.Record = &rec
	}

	s.logger.InfoContext(ctx, "license inspected",
		"request_id", requestcontext.RequestID(ctx),
		"issuer", h.IssuerIdentificationNumber,
		"version", h.VersionNumber,
		"field_count", len(fields),
		"normalized", out.Record != nil,
	)
	return out, nil
}
