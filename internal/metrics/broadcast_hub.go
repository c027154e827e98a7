package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hubSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "chainpulse",
		Subsystem: "hub",
		Name:      "subscribers",
		Help:      "Connected subscribers.",
	})

	hubRoomMembers = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "chainpulse",
		Subsystem: "hub",
		Name:      "room_members",
		Help:      "Subscribers per topic room.",
	}, []string{"topic"})

	hubBroadcastsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse",
		Subsystem: "hub",
		Name:      "broadcasts_total",
		Help:      "Count of broadcasts by outcome.",
	}, []string{"topic", "status"})

	hubBroadcastRecipients = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainpulse",
		Subsystem: "hub",
		Name:      "broadcast_recipients",
		Help:      "Recipients per broadcast.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"topic"})

	hubRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse",
		Subsystem: "hub",
		Name:      "requests_total",
		Help:      "Count of one-shot requests.",
	}, []string{"type", "status"})

	hubRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "chainpulse",
		Subsystem: "hub",
		Name:      "request_duration_seconds",
		Help:      "Duration of one-shot requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"type", "status"})

	hubDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "chainpulse",
		Subsystem: "hub",
		Name:      "dropped_messages_total",
		Help:      "Messages dropped on full subscriber queues.",
	}, []string{"event"})
)

// BroadcastHub tracks metrics for the subscriber hub.
type BroadcastHub struct{}

// NewBroadcastHub constructs a BroadcastHub collector.
func NewBroadcastHub() *BroadcastHub {
	return &BroadcastHub{}
}

// SetSubscribers publishes the number of live connections.
func (m BroadcastHub) SetSubscribers(n int) {
	hubSubscribers.Set(float64(n))
}

// SetRoomMembers publishes one room's size.
func (m BroadcastHub) SetRoomMembers(topic string, n int) {
	hubRoomMembers.WithLabelValues(topic).Set(float64(n))
}

// ObserveBroadcast records a delivered broadcast.
func (m BroadcastHub) ObserveBroadcast(topic string, recipients int) {
	hubBroadcastsTotal.WithLabelValues(topic, "sent").Inc()
	hubBroadcastRecipients.WithLabelValues(topic).Observe(float64(recipients))
}

// ObserveSkippedBroadcast records a tick that found its room empty.
func (m BroadcastHub) ObserveSkippedBroadcast(topic string) {
	hubBroadcastsTotal.WithLabelValues(topic, "skipped").Inc()
}

// ObserveRequest records a one-shot request.
func (m BroadcastHub) ObserveRequest(requestType string, err error, started time.Time) {
	status := statusOf(err)
	hubRequestsTotal.WithLabelValues(requestType, status).Inc()
	hubRequestDuration.WithLabelValues(requestType, status).Observe(time.Since(started).Seconds())
}

// ObserveDropped records a message that did not fit a subscriber queue.
func (m BroadcastHub) ObserveDropped(event string) {
	hubDroppedTotal.WithLabelValues(event).Inc()
}
