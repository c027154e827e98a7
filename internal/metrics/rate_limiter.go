package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rateLimitDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse",
		Subsystem: "rate_limiter",
		Name:      "decisions_total",
		Help:      "Count of admission decisions.",
	}, []string{"class", "decision"})

	rateLimitStoreErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse",
		Subsystem: "rate_limiter",
		Name:      "store_errors_total",
		Help:      "Requests admitted because the counter store failed.",
	}, []string{"class"})
)

// RateLimiter tracks metrics for request admission.
type RateLimiter struct{}

// NewRateLimiter constructs a RateLimiter collector.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{}
}

// ObserveDecision records an admit or reject.
func (m RateLimiter) ObserveDecision(class string, allowed bool) {
	decision := "allowed"
	if !allowed {
		decision = "rejected"
	}
	rateLimitDecisionsTotal.WithLabelValues(class, decision).Inc()
}

// ObserveStoreError records a fail-open admission.
func (m RateLimiter) ObserveStoreError(class string) {
	rateLimitStoreErrorsTotal.WithLabelValues(class).Inc()
}
