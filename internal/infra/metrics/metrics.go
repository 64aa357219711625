// File: internal/infra/metrics/metrics.go
package metrics

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	chatMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_messages_total",
			Help: "Chat log appends per author (user/assistant).",
		},
		[]string{"author"},
	)

	sessionEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_events_total",
			Help: "Session lifecycle events (restore/login/logout/expired).",
		},
		[]string{"event"},
	)

	backendRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_requests_total",
			Help: "Backend API calls per endpoint and status code (0 = transport error).",
		},
		[]string{"endpoint", "status"},
	)

	backendLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_latency_ms",
			Help:    "Backend call latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000},
		},
		[]string{"endpoint"},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(
			chatMessagesTotal, sessionEventsTotal,
			backendRequestsTotal, backendLatencyMs,
		)
	})
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func IncChatMessage(author string) {
	chatMessagesTotal.WithLabelValues(norm(author)).Inc()
}

func IncSessionEvent(event string) {
	sessionEventsTotal.WithLabelValues(norm(event)).Inc()
}

func ObserveBackend(endpoint string, status int, elapsed time.Duration) {
	backendRequestsTotal.WithLabelValues(norm(endpoint), strconv.Itoa(status)).Inc()
	backendLatencyMs.WithLabelValues(norm(endpoint)).Observe(float64(elapsed.Milliseconds()))
}
