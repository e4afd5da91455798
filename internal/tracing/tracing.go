// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	jaegerPropagator "go.opentelemetry.io/contrib/propagators/jaeger"

	"github.com/portaldesk/portal-service/internal/logging"
)

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

// NewTracer sets the global otel tracer provider and returns a tracer for
// the service. With tracing disabled spans are recorded against a provider
// without exporters, which keeps them no-ops.
func NewTracer(cfg *Config) *Tracer {
	t := new(Tracer)
	t.logger = cfg.Logger

	opts := make([]sdktrace.TracerProviderOption, 0)

	if cfg.Enabled {
		for _, exporter := range exporters(cfg) {
			opts = append(opts, sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)))
		}
	}

	provider := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
			jaegerPropagator.Jaeger{},
		),
	)

	t.tracer = provider.Tracer("portal-service")

	return t
}

func exporters(cfg *Config) []sdktrace.SpanExporter {
	var ret []sdktrace.SpanExporter

	if cfg.OtelGRPCEndpoint != "" {
		exporter, err := otlptrace.New(
			context.Background(),
			otlptracegrpc.NewClient(
				otlptracegrpc.WithEndpoint(cfg.OtelGRPCEndpoint),
				otlptracegrpc.WithInsecure(),
			),
		)
		if err != nil {
			cfg.Logger.Errorf("failed to create otlp grpc exporter: %v", err)
		} else {
			ret = append(ret, exporter)
		}
	}

	if cfg.OtelHTTPEndpoint != "" {
		exporter, err := otlptrace.New(
			context.Background(),
			otlptracehttp.NewClient(
				otlptracehttp.WithEndpoint(cfg.OtelHTTPEndpoint),
				otlptracehttp.WithInsecure(),
			),
		)
		if err != nil {
			cfg.Logger.Errorf("failed to create otlp http exporter: %v", err)
		} else {
			ret = append(ret, exporter)
		}
	}

	if len(ret) == 0 {
		exporter, err := stdouttrace.New()
		if err != nil {
			cfg.Logger.Errorf("failed to create stdout exporter: %v", err)
			return nil
		}
		ret = append(ret, exporter)
	}

	return ret
}
