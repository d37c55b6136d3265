// Package metric wraps the prometheus collectors recorded while serving menus.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IncrementalCounter counts events partitioned by label values.
type IncrementalCounter interface {
	Increment(val ...string)
}

// DurationObserver records durations, in seconds, partitioned by label values.
type DurationObserver interface {
	Observe(seconds float64, val ...string)
}

// Counter is a prometheus backed IncrementalCounter.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

// Increment adds one to the series identified by val.
func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounter registers a counter with reg. It panics when the name is
// already registered.
func NewCounter(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(vec)

	return &Counter{Name: name, Help: help, vec: vec}
}

// Histogram is a prometheus backed DurationObserver.
type Histogram struct {
	Name string
	Help string

	vec *prometheus.HistogramVec
}

// Observe records seconds in the series identified by val.
func (h *Histogram) Observe(seconds float64, val ...string) {
	h.vec.WithLabelValues(val...).Observe(seconds)
}

// NewHistogram registers a histogram with reg using the default buckets.
// It panics when the name is already registered.
func NewHistogram(reg prometheus.Registerer, name, help string, labels ...string) *Histogram {
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    name,
		Help:    help,
		Buckets: prometheus.DefBuckets,
	}, labels)

	reg.MustRegister(vec)

	return &Histogram{Name: name, Help: help, vec: vec}
}

// HandlerFor returns an HTTP handler exposing the metrics gathered by reg.
func HandlerFor(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
