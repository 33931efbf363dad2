package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Trace exporter names accepted by OTEL_TRACES_EXPORTER.
const (
	ExporterNone     = "none"
	ExporterStdout   = "stdout"
	ExporterOTLP     = "otlp"
	ExporterOTLPHTTP = "otlphttp"
)

// ValidExporter reports whether name is a trace exporter we can build.
func ValidExporter(name string) bool {
	switch name {
	case ExporterNone, ExporterStdout, ExporterOTLP, ExporterOTLPHTTP, "":
		return true
	default:
		return false
	}
}

// newSpanExporter builds the exporter named by name. It returns nil for
// "none"; spans are then created but never leave the process. The OTLP
// exporters read their endpoint from the standard OTEL_EXPORTER_OTLP_*
// variables.
func newSpanExporter(ctx context.Context, name string, w io.Writer) (sdktrace.SpanExporter, error) {
	switch name {
	case ExporterNone, "":
		return nil, nil
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithWriter(w))
	case ExporterOTLP:
		return otlptracegrpc.New(ctx)
	case ExporterOTLPHTTP:
		return otlptracehttp.New(ctx)
	default:
		return nil, fmt.Errorf("telemetry: unknown trace exporter %q", name)
	}
}
