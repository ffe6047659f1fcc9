// Package otel configures OpenTelemetry tracing for calorie.space processes.
package otel

import (
	"context"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	// EnvEndpoint names the OTLP/HTTP collector URL.
	EnvEndpoint = "CALORIE_SPACE_OTEL_ENDPOINT"
	// EnvEnabled disables tracing when set to "false".
	EnvEnabled = "CALORIE_SPACE_OTEL_ENABLED"
	// EnvSampleRatio sets a parent-based ratio sampler in [0,1].
	EnvSampleRatio = "CALORIE_SPACE_OTEL_SAMPLE_RATIO"
)

// Setup initialises tracing for serviceName.
//
// Tracing is opt-in: with no endpoint, or with tracing explicitly disabled,
// Setup returns a no-op shutdown and registers no global provider. The
// returned shutdown flushes pending spans and should be deferred.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if strings.EqualFold(os.Getenv(EnvEnabled), "false") {
		return noop, nil
	}

	endpoint := strings.TrimSpace(os.Getenv(EnvEndpoint))
	if endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(os.Getenv(EnvSampleRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func sampler(raw string) sdktrace.Sampler {
	ratio, ok := parseRatio(raw)
	if !ok {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
}

func parseRatio(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	ratio, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	if ratio < 0 || ratio > 1 {
		return 0, false
	}
	return ratio, true
}
