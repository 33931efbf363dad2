// Package telemetry sets up tracing and metrics for the course service.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gtrskylin3/CourseWebsite/internal/course"

type Config struct {
	ServiceName string
	Version     string
	Environment string

	// TracesExporter is one of the Exporter* names.
	TracesExporter string

	// MetricsEnabled exposes a Prometheus registry through MetricsHandler.
	MetricsEnabled bool

	// Output receives stdout trace exports. Defaults to os.Stdout.
	Output io.Writer
}

// Telemetry owns the providers built by Setup.
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider

	// MeterProvider is nil when metrics are disabled.
	MeterProvider *sdkmetric.MeterProvider

	Auth *AuthMetrics

	registry *prometheus.Registry
}

// Setup builds the tracer and meter providers and installs them as the
// otel globals together with the W3C propagators.
func Setup(ctx context.Context, cfg Config) (*Telemetry, error) {
	if !ValidExporter(cfg.TracesExporter) {
		return nil, fmt.Errorf("telemetry: unknown trace exporter %q", cfg.TracesExporter)
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.Version),
		semconv.DeploymentEnvironment(cfg.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("telemetry: resource: %w", err)
	}

	exp, err := newSpanExporter(ctx, cfg.TracesExporter, cfg.Output)
	if err != nil {
		return nil, err
	}
	tpOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	if exp != nil {
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp))
	}

	t := &Telemetry{TracerProvider: sdktrace.NewTracerProvider(tpOpts...)}
	otel.SetTracerProvider(t.TracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if cfg.MetricsEnabled {
		t.registry = prometheus.NewRegistry()
		t.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		reader, err := otelprom.New(otelprom.WithRegisterer(t.registry))
		if err != nil {
			_ = t.TracerProvider.Shutdown(ctx)
			return nil, fmt.Errorf("telemetry: prometheus exporter: %w", err)
		}
		t.MeterProvider = sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(reader),
		)
		otel.SetMeterProvider(t.MeterProvider)
	}

	t.Auth, err = NewAuthMetrics(t.Meter())
	if err != nil {
		_ = t.Shutdown(ctx)
		return nil, fmt.Errorf("telemetry: auth metrics: %w", err)
	}
	return t, nil
}

// Tracer returns the service tracer.
func (t *Telemetry) Tracer() trace.Tracer {
	return t.TracerProvider.Tracer(instrumentationName)
}

// Meter returns the service meter, a no-op one when metrics are off.
func (t *Telemetry) Meter() metric.Meter {
	if t.MeterProvider == nil {
		return noop.NewMeterProvider().Meter(instrumentationName)
	}
	return t.MeterProvider.Meter(instrumentationName)
}

// MeterProviderOrNoop is what instrumentation libraries should be handed.
func (t *Telemetry) MeterProviderOrNoop() metric.MeterProvider {
	if t.MeterProvider == nil {
		return noop.NewMeterProvider()
	}
	return t.MeterProvider
}

// MetricsHandler serves the Prometheus exposition, or nil when metrics are
// disabled.
func (t *Telemetry) MetricsHandler() http.Handler {
	if t.registry == nil {
		return nil
	}
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{Registry: t.registry})
}

// Shutdown flushes and stops both providers.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if t.TracerProvider != nil {
		errs = append(errs, t.TracerProvider.Shutdown(ctx))
	}
	if t.MeterProvider != nil {
		errs = append(errs, t.MeterProvider.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
