package llm

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comicstory_llm_requests_total",
			Help: "Total number of chat completion requests.",
		},
		[]string{"provider", "model", "status"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "comicstory_llm_request_duration_seconds",
			Help:    "Histogram of chat completion request durations.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120, 300},
		},
		[]string{"provider", "model"},
	)
	totalTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "comicstory_llm_total_tokens",
			Help:    "Histogram of total token counts (prompt + completion).",
			Buckets: prometheus.LinearBuckets(250, 250, 20),
		},
		[]string{"provider", "model"},
	)
)

// Request statuses recorded by ObserveRequest.
const (
	StatusSuccess       = "success"
	StatusError         = "error"
	StatusEmptyResponse = "error_empty_response"
)

// ObserveRequest records one chat call started at start.
func ObserveRequest(provider, model string, start time.Time, status string) {
	requestDuration.WithLabelValues(provider, model).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(provider, model, status).Inc()
}

// ObserveTokens records prompt plus completion tokens when the backend reports them.
func ObserveTokens(provider, model string, tokens int) {
	if tokens <= 0 {
		return
	}
	totalTokens.WithLabelValues(provider, model).Observe(float64(tokens))
}
