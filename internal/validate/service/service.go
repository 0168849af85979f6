// Package service wraps the pure NID decoders with the service concerns the
// HTTP layer needs: logging, metrics, and audit emission. The decoders stay
// side-effect free; everything observable happens here.
package service

import (
	"context"
	"log/slog"
	"time"

	"verid/internal/audit"
	"verid/internal/validate/metrics"
	"verid/pkg/nid"
	"verid/pkg/nid/albania"
	"verid/pkg/nid/kosovo"
	"verid/pkg/platform/device"
	"verid/pkg/requestcontext"
)

// Country labels used in logs, metrics, and audit events.
const (
	CountryAlbania = "albania"
	CountryKosovo  = "kosovo"
)

// AuditPublisher is the sink for validation audit events.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service exposes the per-country validation operations.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   AuditPublisher
}

// Option configures the Service.
type Option func(*Service)

// WithMetrics attaches a metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAuditPublisher attaches an audit sink.
func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.audit = p
	}
}

// New constructs the validation service.
func New(logger *slog.Logger, opts ...Option) *Service {
	s := &Service{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DecodeAlbania decodes an Albanian NID into its embedded attributes.
func (s *Service) DecodeAlbania(ctx context.Context, code string) (albania.Info, error) {
	start := time.Now()
	info, err := albania.Decode(code)
	s.observe(ctx, CountryAlbania, audit.OperationDecode, err, time.Since(start))
	return info, err
}

// ValidateAlbania checks an Albanian NID without extracting fields.
func (s *Service) ValidateAlbania(ctx context.Context, code string) error {
	start := time.Now()
	err := albania.Validate(code)
	s.observe(ctx, CountryAlbania, audit.OperationValidate, err, time.Since(start))
	return err
}

// ValidateKosovo checks a Kosovo personal number.
func (s *Service) ValidateKosovo(ctx context.Context, code string) error {
	start := time.Now()
	err := kosovo.Validate(code)
	s.observe(ctx, CountryKosovo, audit.OperationValidate, err, time.Since(start))
	return err
}

// CheckAlbania reports whether code is a valid Albanian NID. The boolean
// form still records the rejection kind in logs, metrics, and audit.
func (s *Service) CheckAlbania(ctx context.Context, code string) bool {
	start := time.Now()
	err := albania.Validate(code)
	s.observe(ctx, CountryAlbania, audit.OperationCheck, err, time.Since(start))
	return err == nil
}

// CheckKosovo reports whether code is a valid Kosovo personal number.
func (s *Service) CheckKosovo(ctx context.Context, code string) bool {
	start := time.Now()
	err := kosovo.Validate(code)
	s.observe(ctx, CountryKosovo, audit.OperationCheck, err, time.Since(start))
	return err == nil
}

// observe records the outcome of one operation in logs, metrics, and the
// audit trail. The raw code never appears here; only the outcome does.
func (s *Service) observe(ctx context.Context, country string, op audit.Operation, err error, elapsed time.Duration) {
	outcome := audit.OutcomeOK
	if err != nil {
		if kind, ok := nid.KindOf(err); ok {
			outcome = string(kind)
		} else {
			outcome = "error"
		}
	}

	requestID := requestcontext.RequestID(ctx)

	if s.logger != nil {
		s.logger.InfoContext(ctx, "nid validation",
			"request_id", requestID,
			"country", country,
			"operation", op,
			"outcome", outcome,
			"duration_us", elapsed.Microseconds(),
		)
	}

	s.metrics.IncrementOutcome(country, string(op), outcome)
	s.metrics.ObserveDuration(country, string(op), elapsed)

	if s.audit != nil {
		s.audit.Emit(ctx, audit.Event{
			Timestamp: requestcontext.Now(ctx),
			RequestID: requestID,
			Country:   country,
			Operation: op,
			Outcome:   outcome,
			ClientIP:  requestcontext.ClientIP(ctx),
			Device:    device.ParseUserAgent(requestcontext.UserAgent(ctx)),
		})
	}
}
