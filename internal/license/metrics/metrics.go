package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decode outcomes. Rejected covers policy and input checks that fail a
// barcode without a decoder error.
const (
	OutcomeOK         = "ok"
	OutcomeFormat     = "format_error"
	OutcomeFieldError = "field_error"
	OutcomeDateError  = "date_error"
	OutcomeRejected   = "rejected"
	OutcomeInternal   = "internal_error"
)

// Metrics provides observability for the license module.
type Metrics struct {
	// Decode outcomes by result class
	DecodeOutcome *prometheus.CounterVec

	// Time spent inside the decoder, excluding transport
	DecodeLatency prometheus.Histogram

	// Number of barcodes per batch request
	BatchSize prometheus.Histogram

	// AAMVA header versions seen on successfully decoded barcodes
	HeaderVersion *prometheus.CounterVec
}

// New creates a new Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the license metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		DecodeOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "license_decoder_decodes_total",
			Help: "Total barcode decodes by outcome",
		}, []string{"outcome"}),

		DecodeLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "license_decoder_decode_duration_seconds",
			Help:    "Duration of a single barcode decode",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "license_decoder_batch_size",
			Help:    "Number of barcodes submitted per batch request",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
		}),

		HeaderVersion: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "license_decoder_header_versions_total",
			Help: "Decoded barcodes by AAMVA header version",
		}, []string{"version"}),
	}
}

// IncrementOutcome records a decode outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.DecodeOutcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveDecodeLatency records how long the decoder ran.
func (m *Metrics) ObserveDecodeLatency(d time.Duration) {
	if m != nil {
		m.DecodeLatency.Observe(d.Seconds())
	}
}

// ObserveBatchSize records the size of a batch request.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}

// IncrementHeaderVersion records the header version of a decoded barcode.
func (m *Metrics) IncrementHeaderVersion(version int) {
	if m != nil {
		m.HeaderVersion.WithLabelValues(strconv.Itoa(version)).Inc()
	}
}
