package alerting

import "time"

// Thresholds configures when samples raise alerts.
type Thresholds struct {
	HealthWarning  float64       `long:"health-warning" env:"HEALTH_WARNING" default:"50" description:"Alert when network health drops below this score"`
	HealthCritical float64       `long:"health-critical" env:"HEALTH_CRITICAL" default:"25" description:"Critical alert when network health drops below this score"`
	GasPrice       float64       `long:"gas-price" env:"GAS_PRICE" default:"100" description:"Alert when gas price (gwei) exceeds this value"`
	BlockTime      float64       `long:"block-time" env:"BLOCK_TIME" default:"15" description:"Alert when average block time (s) exceeds this value"`
	Cooldown       time.Duration `long:"cooldown" env:"COOLDOWN" default:"5m" description:"Minimum gap between two alerts of the same type"`
}

// DefaultThresholds mirrors the flag defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HealthWarning:  50,
		HealthCritical: 25,
		GasPrice:       100,
		BlockTime:      15,
		Cooldown:       5 * time.Minute,
	}
}
