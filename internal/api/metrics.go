package api

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the API.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Scores          *prometheus.HistogramVec
	Recommendations *prometheus.CounterVec
	RateLimited     prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rentwise",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rentwise",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		Scores: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rentwise",
			Name:      "neighborhood_score",
			Help:      "Distribution of computed neighborhood scores.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}, []string{"neighborhood"}),
		Recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rentwise",
			Name:      "recommendations_total",
			Help:      "Weight recommendations by profile type.",
		}, []string{"profile_type"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rentwise",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}
	reg.MustRegister(m.Requests, m.RequestDuration, m.Scores, m.Recommendations, m.RateLimited)
	return m
}

func (m *Metrics) observeScore(neighborhood string, score int) {
	if m == nil {
		return
	}
	m.Scores.WithLabelValues(neighborhood).Observe(float64(score))
}

func (m *Metrics) observeRequest(route string, code int, seconds float64) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(seconds)
}
