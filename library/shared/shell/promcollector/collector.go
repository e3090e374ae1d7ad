package promcollector

import (
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "library"

// ErrNilRegisterer is returned when NewCollector gets no prometheus.Registerer.
var ErrNilRegisterer = errors.New("prometheus registerer must not be nil")

// Collector is a shell.MetricsCollector backed by Prometheus histograms, counters and gauges.
type Collector struct {
	registerer prometheus.Registerer
	namespace  string
	buckets    []float64

	mu         sync.Mutex
	histograms map[string]*prometheus.HistogramVec
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	dropped    prometheus.Counter
}

// Option configures a Collector.
type Option func(*Collector) error

// WithNamespace overrides the "library" metric name prefix.
func WithNamespace(namespace string) Option {
	return func(c *Collector) error {
		c.namespace = namespace

		return nil
	}
}

// WithBuckets overrides prometheus.DefBuckets for duration histograms.
func WithBuckets(buckets []float64) Option {
	return func(c *Collector) error {
		c.buckets = slices.Clone(buckets)

		return nil
	}
}

// NewCollector creates a Collector registering its metrics with registerer.
func NewCollector(registerer prometheus.Registerer, options ...Option) (*Collector, error) {
	if registerer == nil {
		return nil, ErrNilRegisterer
	}

	c := &Collector{
		registerer: registerer,
		namespace:  defaultNamespace,
		buckets:    prometheus.DefBuckets,
		histograms: make(map[string]*prometheus.HistogramVec),
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	c.dropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      "metrics_dropped_total",
		Help:      "Observations dropped because of inconsistent label names.",
	})

	if err := registerer.Register(c.dropped); err != nil {
		return nil, err
	}

	return c, nil
}

// RecordDuration observes duration in seconds.
func (c *Collector) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vec, found := c.histograms[metric]
	if !found {
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: c.namespace,
			Name:      metric,
			Help:      metric,
			Buckets:   c.buckets,
		}, labelNames(labels))

		if !c.register(vec) {
			return
		}

		c.histograms[metric] = vec
	}

	observer, err := vec.GetMetricWith(labels)
	if err != nil {
		c.dropped.Inc()
		return
	}

	observer.Observe(duration.Seconds())
}

// IncrementCounter adds one to the counter.
func (c *Collector) IncrementCounter(metric string, labels map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vec, found := c.counters[metric]
	if !found {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: c.namespace,
			Name:      metric,
			Help:      metric,
		}, labelNames(labels))

		if !c.register(vec) {
			return
		}

		c.counters[metric] = vec
	}

	counter, err := vec.GetMetricWith(labels)
	if err != nil {
		c.dropped.Inc()
		return
	}

	counter.Inc()
}

// RecordValue sets the gauge to value.
func (c *Collector) RecordValue(metric string, value float64, labels map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	vec, found := c.gauges[metric]
	if !found {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: c.namespace,
			Name:      metric,
			Help:      metric,
		}, labelNames(labels))

		if !c.register(vec) {
			return
		}

		c.gauges[metric] = vec
	}

	gauge, err := vec.GetMetricWith(labels)
	if err != nil {
		c.dropped.Inc()
		return
	}

	gauge.Set(value)
}

func (c *Collector) register(collector prometheus.Collector) bool {
	if err := c.registerer.Register(collector); err != nil {
		c.dropped.Inc()
		return false
	}

	return true
}

func labelNames(labels map[string]string) []string {
	return slices.Sorted(maps.Keys(labels))
}
