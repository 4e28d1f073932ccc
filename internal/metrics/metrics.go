package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Ingestion Metrics
var (
	RunsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRunsIngested,
			Help: HelpTextRunsIngested,
		},
	)

	RunsDuplicate = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRunsDuplicate,
			Help: HelpTextRunsDuplicate,
		},
	)

	RunParseFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRunParseFailures,
			Help: HelpTextRunParseFailures,
		},
	)

	UploadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUploadsTotal,
			Help: HelpTextUploadsTotal,
		},
	)

	UploadRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUploadRejected,
			Help: HelpTextUploadRejected,
		},
		[]string{LabelReason},
	)
)
