package model

import "time"

// AlertType identifies the condition that raised an alert.
type AlertType string

var (
	AlertLowHealth     AlertType = "low_network_health"
	AlertHighGasPrice  AlertType = "high_gas_price"
	AlertSlowBlocks    AlertType = "slow_block_time"
	AlertUpstreamIssue AlertType = "upstream_connectivity"
)

// AlertSeverity ranks alerts for display and filtering.
type AlertSeverity string

var (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is a threshold breach observed on the live metrics stream.
type Alert struct {
	ID           string        `json:"id"`
	Type         AlertType     `json:"type"`
	Severity     AlertSeverity `json:"severity"`
	Message      string        `json:"message"`
	Value        float64       `json:"value"`
	Threshold    float64       `json:"threshold"`
	BlockNumber  uint64        `json:"blockNumber"`
	Acknowledged bool          `json:"acknowledged"`
	CreatedAt    time.Time     `json:"createdAt"`
}
