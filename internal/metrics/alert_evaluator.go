package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var alertsRaisedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "chainpulse",
	Subsystem: "alerting",
	Name:      "alerts_total",
	Help:      "Count of raised alerts.",
}, []string{"type", "severity", "delivered"})

// AlertEvaluator tracks metrics for raised alerts.
type AlertEvaluator struct{}

// NewAlertEvaluator constructs an AlertEvaluator collector.
func NewAlertEvaluator() *AlertEvaluator {
	return &AlertEvaluator{}
}

// ObserveAlert records a raised alert and whether it reached the publish channel.
func (m AlertEvaluator) ObserveAlert(alertType, severity string, delivered bool) {
	alertsRaisedTotal.WithLabelValues(alertType, severity, strconv.FormatBool(delivered)).Inc()
}
