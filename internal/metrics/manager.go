package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests *prometheus.CounterVec
	CounterExports  prometheus.Counter
	CounterDenied   *prometheus.CounterVec

	// gauges
	GaugeRequests prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("backend", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterExports := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "exports",
		Help:      "The total number of completed data exports",
	})
	counterDenied := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "access_denied",
		Help:      "Requests rejected as unauthenticated or forbidden",
	}, []string{"reason"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.0001, 0.0005, 0.001, 0.005, 0.01,
				0.05, 0.1, 0.5, 1, 5, 10,
			},
			Name: "request_duration_seconds",
			Help: "Total duration of requests in seconds",
		},
	)

	return &Manager{
		CounterRequests:     counterRequests,
		CounterExports:      counterExports,
		CounterDenied:       counterDenied,
		GaugeRequests:       gaugeRequests,
		HistRequestDuration: histReqDuration,
	}
}
