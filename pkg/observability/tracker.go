package observability

import (
	"context"
	"runtime"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	tracer "go.opentelemetry.io/otel/trace"
	"k8s.io/klog/v2"
)

const instrumentationName = "github.com/linode/snapshot-filestore"

// Global tracing variables. Tracer falls back to the global no-op provider
// until InitTracer is called.
var (
	Tracer         tracer.Tracer = otel.Tracer(instrumentationName)
	TracerProvider *trace.TracerProvider
)

// InitOtelTracing installs a batching OTLP/HTTP tracer provider sending to endpoint.
func InitOtelTracing(ctx context.Context, serviceName, serviceVersion, endpoint string) error {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return err
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
		resource.WithProcess(),
		resource.WithOS(),
		resource.WithHost(),
	)
	if err != nil {
		klog.Errorf("Failed to create resource: %v", err)
	}

	TracerProvider = trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
	)

	otel.SetTracerProvider(TracerProvider)

	klog.Infof("OpenTelemetry tracing initialized for service: %s, version: %s, endpoint: %s", serviceName, serviceVersion, endpoint)
	return nil
}

// InitTracer initializes the global tracer.
func InitTracer(ctx context.Context, serviceName, serviceVersion, endpoint string) error {
	if err := InitOtelTracing(ctx, serviceName, serviceVersion, endpoint); err != nil {
		return err
	}
	Tracer = otel.Tracer(serviceName)
	return nil
}

// ShutdownTracer flushes pending spans. It is a no-op when tracing was never initialized.
func ShutdownTracer(ctx context.Context) error {
	if TracerProvider == nil {
		return nil
	}
	return TracerProvider.Shutdown(ctx)
}

// TraceFunctionData records params and the outcome on span and ends it.
func TraceFunctionData(span tracer.Span, operationName string, params map[string]string, err error) {
	for key, value := range params {
		span.SetAttributes(attribute.String(key, value))
	}

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		span.End()
		klog.V(4).Infof("Error in operation %s: %v. Params: %v", operationName, err, params)
		return
	}
	span.SetStatus(codes.Ok, "operation successful")
	span.End()
}

// StartFunctionSpan creates a tracing span using the calling function's name
func StartFunctionSpan(ctx context.Context) (context.Context, tracer.Span) {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		klog.Warning("Failed to retrieve function name from runtime.Caller")
		return Tracer.Start(ctx, "unknown_function")
	}

	functionName := runtime.FuncForPC(pc).Name()

	// Extract only the function name (removing package path)
	if idx := strings.LastIndex(functionName, "."); idx != -1 {
		functionName = functionName[idx+1:]
	}

	return Tracer.Start(ctx, functionName)
}
