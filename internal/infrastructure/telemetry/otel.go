package telemetry

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultTracesEndpoint = "http://localhost:4318/v1/traces"

type exporterTarget struct {
	endpoint string
	path     string
	insecure bool
}

// parseTracesEndpoint accepts a full URL or the host:port form.
func parseTracesEndpoint(raw string) exporterTarget {
	if raw == "" {
		raw = defaultTracesEndpoint
	}
	t := exporterTarget{endpoint: "localhost:4318", path: "/v1/traces", insecure: true}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		t.endpoint = raw
		return t
	}
	u, err := url.Parse(raw)
	if err != nil {
		return t
	}
	if u.Host != "" {
		t.endpoint = u.Host
	}
	if u.Path != "" {
		t.path = u.Path
	}
	t.insecure = u.Scheme == "http"
	return t
}

// InitTracer installs a global OTLP/HTTP tracer provider and returns its
// shutdown function.
func InitTracer(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	target := parseTracesEndpoint(os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"))

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(target.endpoint),
		otlptracehttp.WithURLPath(target.path),
	}
	if target.insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(opts...))
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String("1.0.0"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Printf("[bridge][telemetry] tracer initialized service=%s endpoint=%s", serviceName, target.endpoint)
	return tp.Shutdown, nil
}
