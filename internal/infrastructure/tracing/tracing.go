// Package tracing installs the OpenTelemetry tracer provider used by the
// HTTP middleware and the transaction executors.
package tracing

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

type ShutdownFunc func(context.Context) error

// Options tweaks provider construction; Writer receives stdout spans when no
// OTLP endpoint is configured.
type Options struct {
	Environment string
	Writer      io.Writer
}

// NewProvider builds a tracer provider from cfg. It returns nil and a no-op
// shutdown when tracing is disabled.
func NewProvider(ctx context.Context, cfg *config.TracingConfig, opts Options, log logger.Interface) (*sdktrace.TracerProvider, ShutdownFunc, error) {
	if !cfg.Enabled {
		return nil, func(context.Context) error { return nil }, nil
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "ticketdesk"
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("deployment.environment", opts.Environment),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build otel resource: %w", err)
	}

	exporter, err := buildExporter(ctx, cfg, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		sdktrace.WithResource(res),
	)

	log.Infow("otel tracing initialized",
		"service", serviceName,
		"endpoint", cfg.Endpoint,
		"sample_ratio", cfg.SampleRatio,
	)

	return tp, tp.Shutdown, nil
}

// Install makes tp the global provider and sets W3C propagation.
func Install(tp *sdktrace.TracerProvider) {
	if tp == nil {
		return
	}
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
}

func buildExporter(ctx context.Context, cfg *config.TracingConfig, opts Options) (sdktrace.SpanExporter, error) {
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		httpOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
		if cfg.Insecure {
			httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, httpOpts...)
	}

	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	return stdouttrace.New(stdouttrace.WithWriter(w))
}
