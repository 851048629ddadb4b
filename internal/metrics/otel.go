package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "schedule-service"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx              context.Context
	meter            metric.Meter
	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram
	sourceFetches    metric.Int64Counter
	sourceErrors     metric.Int64Counter
	sourceLatencyMs  metric.Float64Histogram
	aggCycles        metric.Int64Counter
	aggErrors        metric.Int64Counter
	aggLatencyMs     metric.Float64Histogram
	aggScheduleSize  metric.Float64Histogram
	uploads          metric.Int64Counter
	uploadErrors     metric.Int64Counter
	uploadLatencyMs  metric.Float64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("schedule-service")
	ctx := context.Background()

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}

	sourceFetches, err := meter.Int64Counter("source_fetch_total")
	if err != nil {
		return nil, err
	}
	sourceErrors, err := meter.Int64Counter("source_fetch_errors_total")
	if err != nil {
		return nil, err
	}
	sourceLatency, err := meter.Float64Histogram("source_fetch_duration_ms")
	if err != nil {
		return nil, err
	}

	aggCycles, err := meter.Int64Counter("aggregation_cycles_total")
	if err != nil {
		return nil, err
	}
	aggErrors, err := meter.Int64Counter("aggregation_errors_total")
	if err != nil {
		return nil, err
	}
	aggLatency, err := meter.Float64Histogram("aggregation_duration_ms")
	if err != nil {
		return nil, err
	}
	aggSize, err := meter.Float64Histogram("aggregation_schedule_size")
	if err != nil {
		return nil, err
	}

	uploads, err := meter.Int64Counter("uploads_total")
	if err != nil {
		return nil, err
	}
	uploadErrors, err := meter.Int64Counter("upload_errors_total")
	if err != nil {
		return nil, err
	}
	uploadLatency, err := meter.Float64Histogram("upload_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              ctx,
		meter:            meter,
		requests:         requests,
		requestLatencyMs: requestLatency,
		sourceFetches:    sourceFetches,
		sourceErrors:     sourceErrors,
		sourceLatencyMs:  sourceLatency,
		aggCycles:        aggCycles,
		aggErrors:        aggErrors,
		aggLatencyMs:     aggLatency,
		aggScheduleSize:  aggSize,
		uploads:          uploads,
		uploadErrors:     uploadErrors,
		uploadLatencyMs:  uploadLatency,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordSourceFetch(league string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrLeague, league)}
	o.recordCounter(o.sourceFetches, 1, attrs...)
	o.recordHistogram(o.sourceLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.sourceErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordAggregation(duration time.Duration, games int, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.aggCycles, 1)
	o.recordHistogram(o.aggLatencyMs, float64(duration.Milliseconds()))
	o.recordHistogram(o.aggScheduleSize, float64(games))
	if err != nil {
		o.recordCounter(o.aggErrors, 1)
	}
}

func (o *otelInstruments) recordUpload(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.uploads, 1)
	o.recordHistogram(o.uploadLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.uploadErrors, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
