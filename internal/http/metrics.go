package http

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	ErrorsTotal     *prometheus.CounterVec
	CatalogDuration *prometheus.HistogramVec
	TracksReturned  prometheus.Histogram
}

func newMetrics(registerer prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "playlistfetch_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"route", "status"},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "playlistfetch_errors_total",
				Help: "Total number of error responses by kind",
			},
			[]string{"kind"},
		),
		CatalogDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "playlistfetch_catalog_duration_seconds",
				Help:    "Time spent fetching playlist tracks from the catalog",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		TracksReturned: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "playlistfetch_tracks_returned",
				Help:    "Number of tracks returned per successful playlist fetch",
				Buckets: []float64{0, 10, 25, 50, 75, 100},
			},
		),
	}

	registerer.MustRegister(
		metrics.RequestsTotal,
		metrics.ErrorsTotal,
		metrics.CatalogDuration,
		metrics.TracksReturned,
	)

	return metrics
}

func (m *Metrics) RecordRequest(route string, status int) {
	m.RequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) RecordError(kind string) {
	m.ErrorsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordCatalogCall(outcome string, duration time.Duration) {
	m.CatalogDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *Metrics) RecordTracksReturned(count int) {
	m.TracksReturned.Observe(float64(count))
}
