package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AuthMetrics counts credential outcomes. All methods are safe on a nil
// receiver, which is what the services get when metrics are off.
type AuthMetrics struct {
	failures metric.Int64Counter
	issued   metric.Int64Counter
}

// NewAuthMetrics registers the auth instruments on meter.
func NewAuthMetrics(meter metric.Meter) (*AuthMetrics, error) {
	failures, err := meter.Int64Counter(
		"course.auth.failures",
		metric.WithDescription("Rejected credentials by failure kind"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	issued, err := meter.Int64Counter(
		"course.auth.tokens_issued",
		metric.WithDescription("Tokens signed by token type"),
		metric.WithUnit("{token}"),
	)
	if err != nil {
		return nil, err
	}

	return &AuthMetrics{failures: failures, issued: issued}, nil
}

func (m *AuthMetrics) RecordFailure(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

func (m *AuthMetrics) RecordIssued(ctx context.Context, tokenType string) {
	if m == nil {
		return
	}
	m.issued.Add(ctx, 1, metric.WithAttributes(attribute.String("token_type", tokenType)))
}
