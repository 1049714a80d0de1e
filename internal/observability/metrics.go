package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dashboard service.
type Metrics struct {
	// Catalog load metrics. The gauges describe the most recent load pass.
	CatalogLoads        *prometheus.CounterVec // labels: outcome={success,error}
	CatalogLoadDuration prometheus.Histogram
	CatalogRecords      prometheus.Gauge
	CatalogRowsExcluded *prometheus.GaugeVec // labels: reason={coordinates,malformed}
	CatalogFieldAbsent  *prometheus.GaugeVec // labels: field={elevation_m,eruption_year}

	// Query and HTTP metrics.
	ViewRequests *prometheus.CounterVec   // labels: view={overview,countries,histogram,activity,map,crosstab}
	HTTPDuration *prometheus.HistogramVec // labels: route, status
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		CatalogLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "volcano_dashboard",
			Name:      "catalog_loads_total",
			Help:      "Catalog load passes by outcome.",
		}, []string{"outcome"}),
		CatalogLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "volcano_dashboard",
			Name:      "catalog_load_duration_seconds",
			Help:      "Duration of a complete catalog read-and-parse pass.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		CatalogRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "volcano_dashboard",
			Name:      "catalog_records",
			Help:      "Records in the cached catalog table.",
		}),
		CatalogRowsExcluded: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "volcano_dashboard",
			Name:      "catalog_rows_excluded",
			Help:      "Rows excluded by the most recent load, by reason.",
		}, []string{"reason"}),
		CatalogFieldAbsent: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "volcano_dashboard",
			Name:      "catalog_field_absent",
			Help:      "Loaded records whose field degraded to absent, by field.",
		}, []string{"field"}),
		ViewRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "volcano_dashboard",
			Name:      "view_requests_total",
			Help:      "Dashboard view requests by view name.",
		}, []string{"view"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "volcano_dashboard",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route pattern and status code.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "status"}),
	}

	prometheus.MustRegister(
		m.CatalogLoads,
		m.CatalogLoadDuration,
		m.CatalogRecords,
		m.CatalogRowsExcluded,
		m.CatalogFieldAbsent,
		m.ViewRequests,
		m.HTTPDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		CatalogLoads:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "volcano_dashboard", Name: "catalog_loads_total"}, []string{"outcome"}),
		CatalogLoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "volcano_dashboard", Name: "catalog_load_duration_seconds"}),
		CatalogRecords:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "volcano_dashboard", Name: "catalog_records"}),
		CatalogRowsExcluded: prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: "volcano_dashboard", Name: "catalog_rows_excluded"}, []string{"reason"}),
		CatalogFieldAbsent:  prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: "volcano_dashboard", Name: "catalog_field_absent"}, []string{"field"}),
		ViewRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "volcano_dashboard", Name: "view_requests_total"}, []string{"view"}),
		HTTPDuration:        prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "volcano_dashboard", Name: "http_request_duration_seconds"}, []string{"route", "status"}),
	}
}
