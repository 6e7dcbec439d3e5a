package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cyberbuddy/backend/pkg/chat"
)

// Metrics holds the service collectors. It implements chat.Observer.
type Metrics struct {
	chatOutcomes     *prometheus.CounterVec
	providerDuration *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		chatOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cyberbuddy",
			Name:      "chat_outcomes_total",
			Help:      "Chat requests by outcome status and error kind.",
		}, []string{"status", "error_type"}),
		providerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cyberbuddy",
			Name:      "provider_request_duration_seconds",
			Help:      "Latency of language model provider calls.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cyberbuddy",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cyberbuddy",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.chatOutcomes, m.providerDuration, m.httpRequests, m.httpDuration)
	return m
}

func (m *Metrics) ObserveOutcome(o chat.Outcome) {
	m.chatOutcomes.WithLabelValues(string(o.Status), string(o.ErrorKind)).Inc()
}

func (m *Metrics) ObserveProviderCall(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.providerDuration.WithLabelValues(result).Observe(d.Seconds())
}

// Middleware records request count and latency keyed by the matched route pattern.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		code := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			} else {
				code = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		m.httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(code)).Inc()
		m.httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
