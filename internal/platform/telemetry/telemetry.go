// Package telemetry starts the OpenTelemetry trace and metric pipelines and
// defines the service's metric instruments.
//
//	tp, err := telemetry.InitTracer(ctx, "device-usage-service", telemetry.ExporterStdout, "")
//	mp, err := telemetry.InitMeter(ctx, "device-usage-service", telemetry.ExporterStdout, "")
//	metrics, err := telemetry.NewMetrics(mp, "device-usage-service")
//	metrics.RecordBooking(ctx, "create", telemetry.ResultAccepted, "")
//
// Both providers must be shut down on exit; Setup bundles that. A nil
// *Metrics records nothing.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Exporter names accepted by InitTracer and InitMeter.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// sink is a resolved exporter choice.
type sink struct {
	otlp     bool
	host     string
	insecure bool
}

// resolveSink checks exporter and, for OTLP, splits endpoint into the host
// the exporters dial and whether TLS is off. A bare "collector:4318" counts
// as plain HTTP.
func resolveSink(exporter, endpoint string) (sink, error) {
	switch exporter {
	case ExporterStdout:
		return sink{}, nil
	case ExporterOTLP:
	default:
		return sink{}, fmt.Errorf("unsupported exporter %q", exporter)
	}

	if endpoint == "" {
		return sink{}, errors.New("otlp exporter requires an endpoint")
	}
	s := sink{otlp: true, host: endpoint, insecure: true}
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		s.host = u.Host
		s.insecure = u.Scheme != "https"
	}
	return s, nil
}

func serviceResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}
	return res, nil
}

// InitTracer installs a global TracerProvider exporting to stdout or to an
// OTLP/HTTP collector at endpoint, together with W3C trace context and
// baggage propagation.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	dst, err := resolveSink(exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	res, err := serviceResource(serviceName)
	if err != nil {
		return nil, err
	}

	var exp sdktrace.SpanExporter
	if dst.otlp {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(dst.host)}
		if dst.insecure {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		exp, err = otlptracehttp.New(ctx, opts...)
	} else {
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a global MeterProvider with a periodic reader. Exporter
// handling matches InitTracer.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	dst, err := resolveSink(exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}
	res, err := serviceResource(serviceName)
	if err != nil {
		return nil, err
	}

	var exp sdkmetric.Exporter
	if dst.otlp {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(dst.host)}
		if dst.insecure {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		exp, err = otlpmetrichttp.New(ctx, opts...)
	} else {
		exp, err = stdoutmetric.New()
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}
