package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Business metrics
	usersRegisteredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of user registrations",
		},
	)

	loginsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total number of successful logins",
		},
	)

	loginsFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "logins_failed_total",
			Help: "Total number of failed login attempts",
		},
	)
)

// RecordHTTPRequest records a completed HTTP request.
func RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	s := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, endpoint, s).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, s).Observe(duration.Seconds())
}

func RecordRegistration() { usersRegisteredTotal.Inc() }
func RecordLogin()        { loginsTotal.Inc() }
func RecordLoginFailed()  { loginsFailedTotal.Inc() }

// Handler exposes the Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
