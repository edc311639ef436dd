package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SMHIAPICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smhi_mcp_api_calls_total",
			Help: "Total SMHI point forecast API calls",
		},
		[]string{"status"},
	)

	SMHIAPILatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "smhi_mcp_api_latency_seconds",
			Help:    "SMHI API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	ForecastsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smhi_mcp_forecasts_served_total",
			Help: "Total forecasts successfully served",
		},
		[]string{"detail_level"},
	)
)
