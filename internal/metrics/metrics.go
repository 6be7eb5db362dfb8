package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liftlens_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "liftlens_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "liftlens_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Database metrics
var (
	DBQueryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liftlens_db_queries_total",
			Help: "Total number of database queries",
		},
		[]string{"operation", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "liftlens_db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation"},
	)
)

// Video streaming metrics
var (
	VideoStreamsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liftlens_video_streams_total",
			Help: "Total number of skeleton video stream requests",
		},
		[]string{"kind", "status"}, // kind: "full" or "partial"
	)

	VideoStreamBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "liftlens_video_stream_bytes_total",
			Help: "Total number of video bytes written to clients",
		},
	)

	VideoStreamDisconnectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "liftlens_video_stream_disconnects_total",
			Help: "Number of streams ended early by a client disconnect",
		},
	)

	VideoStreamDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "liftlens_video_stream_duration_seconds",
			Help:    "Duration of video streaming responses in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60, 300},
		},
	)
)

// Analysis pipeline metrics
var (
	AnalysesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liftlens_analyses_created_total",
			Help: "Total number of analyses created",
		},
		[]string{"exercise", "score"},
	)

	UploadBytesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "liftlens_upload_bytes_total",
			Help: "Total number of uploaded video bytes stored",
		},
	)

	MLRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "liftlens_ml_requests_total",
			Help: "Total number of calls to the analysis service",
		},
		[]string{"status"}, // "success" or "error"
	)

	MLRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "liftlens_ml_request_duration_seconds",
			Help:    "Analysis service request duration in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)
)
