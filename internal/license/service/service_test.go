package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"licensedecoder/internal/license/metrics"
	"licensedecoder/pkg/aamva"
	"licensedecoder/pkg/aamva/aamvatest"
	dErrors "licensedecoder/pkg/domain-errors"
	"licensedecoder/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	logs    *bytes.Buffer
	metrics *metrics.Metrics
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.logs = &bytes.Buffer{}
	s.metrics = metrics.NewWithRegisterer(prometheus.NewRegistry())
	s.ctx = requestcontext.WithRequestID(context.Background(), "req-1")
}

func (s *ServiceSuite) newService(opts ...Option) *Service {
	base := []Option{
		WithLogger(slog.New(slog.NewJSONHandler(s.logs, nil))),
		WithMetrics(s.metrics),
	}
	return New(append(base, opts...)...)
}

func (s *ServiceSuite) outcomes(outcome string) float64 {
	return testutil.ToFloat64(s.metrics.DecodeOutcome.WithLabelValues(outcome))
}

func (s *ServiceSuite) TestDecode() {
	s.Run("success records metrics and logs without PII", func() {
		svc := s.newService()
		lic, err := svc.Decode(s.ctx, aamvatest.Arizona())
		s.Require().NoError(err)
		s.Equal("DONG", lic.Record().FirstName)

		s.Equal(1.0, s.outcomes(metrics.OutcomeOK))
		s.Equal(1.0, testutil.ToFloat64(s.metrics.HeaderVersion.WithLabelValues("8")))
		s.Contains(s.logs.String(), `"request_id":"req-1"`)
		s.NotContains(s.logs.String(), "D12345678")
		s.NotContains(s.logs.String(), "DONG")
	})

	s.Run("format errors become invalid input", func() {
		svc := s.newService()
		raw := aamvatest.Arizona()
		_, err := svc.Decode(s.ctx, raw[:len(raw)-4])
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
		s.ErrorIs(err, aamva.ErrFormat)
		s.Equal(1.0, s.outcomes(metrics.OutcomeFormat))
	})

	s.Run("field errors name the field, not the value", func() {
		svc := s.newService()
		_, err := svc.Decode(s.ctx, aamvatest.Barcode("AAMVA", 8, "DAADong Lee", "DAUtall"))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
		s.ErrorIs(err, aamva.ErrFieldParse)

		var de *dErrors.Error
		s.Require().ErrorAs(err, &de)
		s.Contains(de.Message, "Height")
		s.NotContains(de.Message, "tall")
		s.Equal(1.0, s.outcomes(metrics.OutcomeFieldError))
	})

	s.Run("date errors", func() {
		svc := s.newService()
		_, err := svc.Decode(s.ctx, aamvatest.Barcode("AAMVA", 8, "DAU069", "DBB08211993"))
		s.ErrorIs(err, aamva.ErrDateParse)
		s.NotContains(s.logs.String(), "08211993")
		s.Equal(1.0, s.outcomes(metrics.OutcomeDateError))
	})

	s.Run("cancelled context", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		_, err := s.newService().Decode(ctx, aamvatest.Arizona())
		s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
	})
}

func (s *ServiceSuite) TestRequireDatesPolicy() {
	noDates := aamvatest.Barcode("AAMVA", 8, "DAADong Lee", "DAU069")

	s.Run("passes through by default", func() {
		lic, err := s.newService().Decode(s.ctx, noDates)
		s.Require().NoError(err)
		s.True(lic.Record().DOB.IsZero())
	})

	s.Run("rejects when required", func() {
		svc := s.newService(WithRequireDates(true))
		_, err := svc.Decode(s.ctx, noDates)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal(1.0, s.outcomes(metrics.OutcomeRejected))

		_, err = svc.Decode(s.ctx, aamvatest.Barcode("AAMVA", 8, "DAU069", "DBB19930821"))
		s.Require().Error(err)
		s.Contains(err.Error(), "expiration")

		_, err = svc.Decode(s.ctx, aamvatest.Oregon())
		s.NoError(err, "issue date is not required")
	})
}

func (s *ServiceSuite) TestDecodeBatch() {
	s.Run("keeps order and isolates failures", func() {
		svc := s.newService(WithBatchConcurrency(2))
		raws := []string{aamvatest.Arizona(), "garbage", aamvatest.Oregon(), aamvatest.Arizona()}

		results, err := svc.DecodeBatch(s.ctx, raws)
		s.Require().NoError(err)
		s.Require().Len(results, 4)

		for i, res := range results {
			s.Equal(i, res.Index)
		}
		s.Require().NoError(results[0].Err)
		s.Equal("LEE", results[0].License.Record().LastName)
		s.Nil(results[1].License)
		s.True(dErrors.HasCode(results[1].Err, dErrors.CodeInvalidInput))
		s.Equal("SALEM", results[2].License.Record().City)
		s.NoError(results[3].Err)

		s.Equal(1, testutil.CollectAndCount(s.metrics.BatchSize))
	})

	s.Run("fails blank and oversized barcodes per item", func() {
		m := metrics.NewWithRegisterer(prometheus.NewRegistry())
		svc := s.newService(WithMetrics(m))
		raws := []string{aamvatest.Arizona(), "   ", strings.Repeat("D", MaxBarcodeBytes+1), "garbage"}

		results, err := svc.DecodeBatch(s.ctx, raws)
		s.Require().NoError(err)
		s.Require().Len(results, 4)

		s.NoError(results[0].Err)
		s.Equal("DONG", results[0].License.Record().FirstName)
		for _, i := range []int{1, 2} {
			s.Equal(i, results[i].Index)
			s.Nil(results[i].License)
			s.True(dErrors.HasCode(results[i].Err, dErrors.CodeValidation))
		}
		s.Contains(results[1].Err.Error(), "barcodes[1] is required")
		s.Contains(results[2].Err.Error(), "at most")
		s.True(dErrors.HasCode(results[3].Err, dErrors.CodeInvalidInput))

		outcomes := func(outcome string) float64 {
			return testutil.ToFloat64(m.DecodeOutcome.WithLabelValues(outcome))
		}
		s.Equal(2.0, outcomes(metrics.OutcomeRejected))
		s.Equal(1.0, outcomes(metrics.OutcomeFormat))
		s.Equal(1.0, outcomes(metrics.OutcomeOK))
	})

	s.Run("rejects empty and oversized batches", func() {
		svc := s.newService(WithMaxBatch(2))
		_, err := svc.DecodeBatch(s.ctx, nil)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		_, err = svc.DecodeBatch(s.ctx, []string{"a", "b", "c"})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("cancelled batch fails whole", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		_, err := s.newService().DecodeBatch(ctx, []string{aamvatest.Arizona()})
		s.True(dErrors.HasCode(err, dErrors.CodeTimeout))
	})
}

func (s *ServiceSuite) TestInspect() {
	s.Run("returns every stage", func() {
		out, err := s.newService().Inspect(s.ctx, aamvatest.Arizona())
		s.Require().NoError(err)
		s.Equal("ANSI ", out.Header.FileType)
		s.Equal("PHOENIX", out.Fields[aamva.FieldCity])
		s.Require().NotNil(out.Record)
		s.Equal("AZ", out.Record.State)
		s.NoError(out.RecordErr)
	})

	s.Run("keeps fields when normalization fails", func() {
		out, err := s.newService().Inspect(s.ctx, aamvatest.Barcode("AAMVA", 8, "DAADong Lee", "DBBnotadate"))
		s.Require().NoError(err)
		s.Nil(out.Record)
		s.True(dErrors.HasCode(out.RecordErr, dErrors.CodeInvalidInput))
		s.Equal("Dong Lee", out.Fields[aamva.FieldName])
	})

	s.Run("header failures are errors", func() {
		_, err := s.newService().Inspect(s.ctx, strings.Repeat("x", 40))
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func (s *ServiceSuite) TestTranslateDecodeError() {
	s.Run("non-decoder errors are internal", func() {
		outcome, err := translateDecodeError(errors.New("unexpected"))
		s.Equal(metrics.OutcomeInternal, outcome)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("format errors keep the format outcome", func() {
		_, decodeErr := aamva.Decode("short")
		outcome, err := translateDecodeError(decodeErr)
		s.Equal(metrics.OutcomeFormat, outcome)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}
