// Package metrics exposes Prometheus metrics for price estimates.
package metrics

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Estimate sources.
const (
	SourceAPI       = "api"
	SourceDashboard = "dashboard"
)

// Estimate outcomes.
const (
	OutcomeKnownLocation   = "known_location"
	OutcomeUnknownLocation = "unknown_location"
	OutcomeInvalid         = "invalid"
	OutcomeError           = "error"
)

var (
	modelFeaturesDesc = prometheus.NewDesc(
		"delhihomes_model_features",
		"Input dimensionality of the loaded price model",
		nil,
		nil,
	)
	modelLocationsDesc = prometheus.NewDesc(
		"delhihomes_model_locations",
		"Number of locations recognized by the loaded price model",
		nil,
		nil,
	)
)

// ModelInfo is what the collector needs to know about the loaded model.
type ModelInfo interface {
	NumFeatures() int
	Locations() []string
}

// ModelCollector is a custom Prometheus collector that reports the shape of
// the loaded model on each scrape.
type ModelCollector struct {
	model ModelInfo
}

// Describe sends the metric descriptors to the channel.
func (c *ModelCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- modelFeaturesDesc
	ch <- modelLocationsDesc
}

// Collect emits the model gauges.
func (c *ModelCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(modelFeaturesDesc, prometheus.GaugeValue, float64(c.model.NumFeatures()))
	ch <- prometheus.MustNewConstMetric(modelLocationsDesc, prometheus.GaugeValue, float64(len(c.model.Locations())))
}

// Recorder counts estimate outcomes.
type Recorder struct {
	registry  *prometheus.Registry
	estimates *prometheus.CounterVec
}

// NewRecorder creates a recorder with its own registry holding the estimate
// counter, the model collector and the Go runtime collectors.
func NewRecorder(model ModelInfo) *Recorder {
	reg := prometheus.NewRegistry()
	estimates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delhihomes_estimates_total",
		Help: "Total price estimate requests by source and outcome",
	}, []string{"source", "outcome"})

	reg.MustRegister(
		estimates,
		&ModelCollector{model: model},
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Recorder{registry: reg, estimates: estimates}
}

// Record counts one estimate outcome. A nil recorder records nothing.
func (r *Recorder) Record(source, outcome string) {
	if r == nil {
		return
	}
	r.estimates.WithLabelValues(source, outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
}
