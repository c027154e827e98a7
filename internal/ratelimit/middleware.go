package ratelimit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

type rejection struct {
	Error      string    `json:"error"`
	RetryAfter int       `json:"retryAfter"`
	Limit      int       `json:"limit"`
	Remaining  int       `json:"remaining"`
	ResetTime  time.Time `json:"resetTime"`
}

// Middleware gates HTTP requests through a Limiter.
type Middleware struct {
	limiter    *Limiter
	classifier *Classifier
	key        KeyFunc
	metrics    Metrics
	logger     *zap.Logger
}

// NewMiddleware wires the admission gate.
func NewMiddleware(limiter *Limiter, classifier *Classifier, key KeyFunc, metrics Metrics, logger *zap.Logger) *Middleware {
	return &Middleware{
		limiter:    limiter,
		classifier: classifier,
		key:        key,
		metrics:    metrics,
		logger:     logger.Named("ratelimit"),
	}
}

// Handler wraps next. Requests over budget get 429; store failures let the request through.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		class := m.classifier.Classify(r.URL.Path)
		decision, err := m.limiter.Consume(r.Context(), m.key(r), class)
		if err != nil {
			m.metrics.ObserveStoreError(string(class))
			m.logger.Warn("rate limit store unavailable, admitting request",
				zap.String("class", string(class)),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}

		m.metrics.ObserveDecision(string(class), decision.Allowed)
		setHeaders(w.Header(), decision)
		if decision.Allowed {
			next.ServeHTTP(w, r)
			return
		}

		exceeded := &RateLimitExceeded{Class: class, Limit: decision.Limit, RetryAfter: decision.RetryAfter}
		m.logger.Debug("request rejected",
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Error(exceeded),
		)
		writeRejection(w, decision)
	})
}

func setHeaders(h http.Header, d Decision) {
	h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(d.ResetAt.Unix(), 10))
}

func writeRejection(w http.ResponseWriter, d Decision) {
	retryAfter := d.RetryAfterSeconds()
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(rejection{
		Error:      "Too many requests",
		RetryAfter: retryAfter,
		Limit:      d.Limit,
		Remaining:  0,
		ResetTime:  d.ResetAt.UTC(),
	})
}
