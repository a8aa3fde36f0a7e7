package imagegen

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "comicstory_image_requests_total",
			Help: "Total number of image generation requests.",
		},
		[]string{"provider", "status"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "comicstory_image_request_duration_seconds",
			Help:    "Histogram of image generation request durations.",
			Buckets: []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		},
		[]string{"provider"},
	)
)

// ObserveRequest records one backend call started at start.
func ObserveRequest(provider string, start time.Time, err error) {
	requestDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	status := "success"
	if err != nil {
		status = "error"
	}
	requestsTotal.WithLabelValues(provider, status).Inc()
}
