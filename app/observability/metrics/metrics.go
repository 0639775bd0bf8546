package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	TripRequestsTotal    metric.Int64Counter
	TripDurationSeconds  metric.Float64Histogram
	LlmLatencySeconds    metric.Float64Histogram
	ImageLookupsTotal    metric.Int64Counter
	PdfRendersTotal      metric.Int64Counter
	PdfRenderErrorsTotal metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// Get returns the process-wide metrics instruments, creating them on first
// use from the global MeterProvider. Before InitTracingAndMetrics runs the
// provider is the no-op default, which keeps tests free of setup.
func Get() *AppMetrics {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("tripforge-api")
		var err error
		m := &AppMetrics{}

		m.TripRequestsTotal, err = meter.Int64Counter(
			"trip_requests_total",
			metric.WithDescription("Total number of trip generation requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create trip_requests_total: %v", err)
		}

		m.TripDurationSeconds, err = meter.Float64Histogram(
			"trip_duration_seconds",
			metric.WithDescription("Duration of trip generation requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create trip_duration_seconds: %v", err)
		}

		m.LlmLatencySeconds, err = meter.Float64Histogram(
			"llm_latency_seconds",
			metric.WithDescription("Latency of upstream model calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_latency_seconds: %v", err)
		}

		m.ImageLookupsTotal, err = meter.Int64Counter(
			"image_lookups_total",
			metric.WithDescription("Image resolutions by fallback chain stage"),
			metric.WithUnit("{lookup}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create image_lookups_total: %v", err)
		}

		m.PdfRendersTotal, err = meter.Int64Counter(
			"pdf_renders_total",
			metric.WithDescription("Total number of itinerary PDF renders"),
			metric.WithUnit("{render}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create pdf_renders_total: %v", err)
		}

		m.PdfRenderErrorsTotal, err = meter.Int64Counter(
			"pdf_render_errors_total",
			metric.WithDescription("Total number of failed itinerary PDF renders"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create pdf_render_errors_total: %v", err)
		}

		appMetrics = m
	})
	return appMetrics
}
