// Package metrics exposes listing activity as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config holds configuration for the listing collector.
type Config struct {
	// Namespace is the prefix for all metrics (default: "adminboard")
	Namespace string
	// Subsystem is an optional subsystem name (default: "listing")
	Subsystem string
	// Buckets defines the histogram buckets for page load duration
	Buckets []float64
}

// DefaultConfig returns the default metrics configuration.
func DefaultConfig() Config {
	return Config{
		Namespace: "adminboard",
		Subsystem: "listing",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5},
	}
}

// Collector holds the Prometheus collectors and implements listing.Observer.
type Collector struct {
	filterApplications *prometheus.CounterVec
	pageLoads          *prometheus.CounterVec
	pageLoadDuration   *prometheus.HistogramVec
	filteredRows       *prometheus.GaugeVec
	visibleRows        *prometheus.GaugeVec
}

// NewCollector registers the listing metrics on reg.
func NewCollector(cfg Config, reg prometheus.Registerer) *Collector {
	def := DefaultConfig()
	if cfg.Namespace == "" {
		cfg.Namespace = def.Namespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = def.Subsystem
	}
	if len(cfg.Buckets) == 0 {
		cfg.Buckets = def.Buckets
	}
	factory := promauto.With(reg)

	return &Collector{
		filterApplications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "filter_applications_total",
				Help:      "Total number of filter reconciliations.",
			},
			[]string{"list"},
		),
		pageLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "page_loads_total",
				Help:      "Total number of completed load-more batches.",
			},
			[]string{"list"},
		),
		pageLoadDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "page_load_duration_seconds",
				Help:      "Load-more latency in seconds.",
				Buckets:   cfg.Buckets,
			},
			[]string{"list"},
		),
		filteredRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "filtered_rows",
				Help:      "Rows matching the current filters.",
			},
			[]string{"list"},
		),
		visibleRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "visible_rows",
				Help:      "Current visible-row cursor.",
			},
			[]string{"list"},
		),
	}
}

func (c *Collector) FiltersApplied(name string, filtered, visible int) {
	c.filterApplications.WithLabelValues(name).Inc()
	c.filteredRows.WithLabelValues(name).Set(float64(filtered))
	c.visibleRows.WithLabelValues(name).Set(float64(visible))
}

func (c *Collector) PageLoaded(name string, visible int, elapsed time.Duration) {
	c.pageLoads.WithLabelValues(name).Inc()
	c.pageLoadDuration.WithLabelValues(name).Observe(elapsed.Seconds())
	c.visibleRows.WithLabelValues(name).Set(float64(visible))
}
