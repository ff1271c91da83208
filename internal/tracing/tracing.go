package tracing

import (
	"context"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/skyport-cloud/skyport-mcp/internal/buildinfo"
)

const (
	tracerName = "github.com/skyport-cloud/skyport-mcp"
)

func GetTracer() trace.Tracer {
	return otel.Tracer(tracerName)
}

func RecordError(span trace.Span, err error, description string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, description)
}

// StartToolSpan starts the span covering one tool call.
func StartToolSpan(ctx context.Context, tool, action string) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{attribute.String("mcp.tool", tool)}
	if action != "" {
		attrs = append(attrs, attribute.String("mcp.action", action))
	}

	return GetTracer().Start(ctx, "tool "+tool,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// Transport wraps next so every outgoing request gets a client span.
func Transport(next http.RoundTripper) http.RoundTripper {
	return otelhttp.NewTransport(next)
}

// InitTraceProvider installs the global tracer provider. Spans are exported to
// w only when export is set; otherwise they are sampled but dropped. The
// returned provider must be shut down to flush pending spans.
func InitTraceProvider(ctx context.Context, export bool, w io.Writer) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", buildinfo.Name),
			attribute.String("build.info.version", buildinfo.Version().String()),
			attribute.String("build.info.commit", buildinfo.Commit()),
		)),
	}

	if export {
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(w),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)

	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)

	return tp, nil
}
