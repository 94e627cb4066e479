package opentelemetry

import (
	"context"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/config"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// InitTracer installs a global tracer provider exporting spans over OTLP gRPC
// to cfg.Tracing.OtelEndpoint. The returned func flushes and stops the exporter.
func InitTracer(ctx context.Context, cfg *config.Config, logger lumber.Logger) func(context.Context) error {
	exporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithEndpoint(cfg.Tracing.OtelEndpoint),
	)
	if err != nil {
		logger.Errorf("failed to create otlp exporter, tracing disabled: %v", err)
		return func(context.Context) error { return nil }
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(constants.ServiceName),
			semconv.ServiceVersionKey.String(constants.BinaryVersion),
			semconv.DeploymentEnvironmentKey.String(cfg.Env),
		),
	)
	if err != nil {
		logger.Errorf("could not set otel resources: %v", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	logger.Infof("exporting traces to %s", cfg.Tracing.OtelEndpoint)
	return provider.Shutdown
}
