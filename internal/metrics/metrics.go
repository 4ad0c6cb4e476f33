package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobs_api_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	SearchesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobs_api_searches_total",
			Help: "Total number of executed search pipelines by strategy.",
		},
		[]string{"strategy"},
	)
	CacheHitsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobs_api_cache_hits_total",
			Help: "Total number of result cache hits.",
		},
	)
	FallbacksCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobs_api_fallbacks_total",
			Help: "Total number of fallback payloads served by reason.",
		},
		[]string{"reason"},
	)
	UpstreamRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobs_api_upstream_request_duration_seconds",
			Help:    "Duration of upstream search provider calls in seconds.",
			Buckets: []float64{0.1, 0.5, 1, 2, 4, 8},
		},
	)
)

func StartMetricsServer(address string) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(SearchesCounter)
	prometheus.MustRegister(CacheHitsCounter)
	prometheus.MustRegister(FallbacksCounter)
	prometheus.MustRegister(UpstreamRequestDuration)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(address, nil))
	}()
}
