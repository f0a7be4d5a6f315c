package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ConversionCollector bundles Prometheus metrics for frame conversions.
type ConversionCollector struct {
	gatherer prometheus.Gatherer

	Conversions *prometheus.CounterVec
	Durations   *prometheus.HistogramVec
}

// NewConversionCollector registers conversion metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewConversionCollector(reg prometheus.Registerer) (*ConversionCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	conversions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "frame_conversions_total",
		Help: "Total number of quaternion frame conversions, labeled by strategy and direction.",
	}, []string{"strategy", "direction"})
	conversions, err := registerCounterVec(reg, conversions, "frame_conversions_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "frame_conversion_duration_seconds",
		Help:    "Wall time of a single frame conversion in seconds.",
		Buckets: []float64{1e-8, 1e-7, 1e-6, 1e-5, 1e-4, 1e-3},
	}, []string{"strategy"})
	durations, err = registerHistogramVec(reg, durations, "frame_conversion_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &ConversionCollector{
		gatherer:    gatherer,
		Conversions: conversions,
		Durations:   durations,
	}, nil
}

// ObserveConversion records one conversion. It is safe on a nil collector.
func (c *ConversionCollector) ObserveConversion(strategy, direction string, took time.Duration) {
	if c == nil {
		return
	}
	if c.Conversions != nil {
		c.Conversions.WithLabelValues(strategy, direction).Inc()
	}
	if c.Durations != nil {
		c.Durations.WithLabelValues(strategy).Observe(took.Seconds())
	}
}

// WriteTextfile writes every gathered metric to path in the Prometheus text
// exposition format, suitable for the node exporter textfile collector.
func (c *ConversionCollector) WriteTextfile(path string) error {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
