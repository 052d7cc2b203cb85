package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Booking outcomes recorded by RecordBooking.
const (
	ResultAccepted  = "accepted"
	ResultRejected  = "rejected"
	ResultUnchanged = "unchanged"
)

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("operation")
	AttrField       = attribute.Key("validation.field")
	AttrHTTPRoute   = attribute.Key("http.route")
)

// Metrics is the set of instruments the service records to. Server and
// client request instruments are written by the HTTP middleware and the
// outbound client.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// BookingTotal counts usage create and update attempts by outcome.
	BookingTotal metric.Int64Counter
	// SeedRowsTotal counts CSV rows read by the startup import.
	SeedRowsTotal metric.Int64Counter
}

// NewMetrics registers every instrument on the meter named serviceName.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}

	var errs []error
	histogram := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}

	m.ServerRequestDuration = histogram("http.server.request.duration", "Duration of incoming HTTP requests")
	m.ServerRequestTotal = counter("http.server.request.total", "Total number of incoming HTTP requests", "{request}")
	m.ClientRequestDuration = histogram("http.client.request.duration", "Duration of outgoing HTTP requests")
	m.ClientRequestTotal = counter("http.client.request.total", "Total number of outgoing HTTP requests", "{request}")
	m.BookingTotal = counter("booking.validation.total", "Usage create and update attempts by outcome", "{booking}")
	m.SeedRowsTotal = counter("seed.rows.total", "Seed CSV rows by outcome", "{row}")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordBooking counts one usage create or update. field names the rule
// that rejected the booking and is empty otherwise.
func (m *Metrics) RecordBooking(ctx context.Context, operation, result, field string) {
	if m == nil || m.BookingTotal == nil {
		return
	}
	attrs := []attribute.KeyValue{AttrOperation.String(operation), AttrResult.String(result)}
	if field != "" {
		attrs = append(attrs, AttrField.String(field))
	}
	m.BookingTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordSeedRows counts rows of one import run.
func (m *Metrics) RecordSeedRows(ctx context.Context, imported, skipped int) {
	if m == nil || m.SeedRowsTotal == nil {
		return
	}
	m.SeedRowsTotal.Add(ctx, int64(imported), metric.WithAttributes(AttrResult.String("imported")))
	m.SeedRowsTotal.Add(ctx, int64(skipped), metric.WithAttributes(AttrResult.String("skipped")))
}

// RecordServerRequest records one handled request. route is the matched
// pattern, so /devices/1 and /devices/2 share a series.
func (m *Metrics) RecordServerRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if status >= http.StatusBadRequest {
		result = "error"
	}
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatus.Int(status),
		AttrResult.String(result),
	)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}

// RecordClientRequest records one outbound call to peer. status is 0 when no
// response arrived.
func (m *Metrics) RecordClientRequest(ctx context.Context, peer, method string, status int, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPStatus.Int(status),
		AttrPeerService.String(peer),
		AttrResult.String(result),
	)
	m.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ClientRequestTotal.Add(ctx, 1, attrs)
}
