package topsis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rollerskates_upstream_requests_total",
		Help: "Requests made to the TOPSIS API, by operation and outcome.",
	}, []string{"operation", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rollerskates_upstream_request_duration_seconds",
		Help:    "Latency of requests made to the TOPSIS API.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)

const (
	outcomeOK        = "ok"
	outcomeAPIError  = "api_error"
	outcomeTransport = "transport_error"
)
