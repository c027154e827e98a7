package aggregator

// Thresholds are the heuristic cut-offs and deductions used by Health.
type Thresholds struct {
	TPSCritical        float64 `long:"tps-critical" env:"TPS_CRITICAL" default:"10" description:"TPS below this takes the critical penalty"`
	TPSWarning         float64 `long:"tps-warning" env:"TPS_WARNING" default:"50" description:"TPS below this takes the warning penalty"`
	TPSCriticalPenalty float64 `long:"tps-critical-penalty" env:"TPS_CRITICAL_PENALTY" default:"20" description:"health deduction for critical TPS"`
	TPSWarningPenalty  float64 `long:"tps-warning-penalty" env:"TPS_WARNING_PENALTY" default:"10" description:"health deduction for low TPS"`

	BlockTimeCritical        float64 `long:"block-time-critical" env:"BLOCK_TIME_CRITICAL" default:"10" description:"block time (s) above this takes the critical penalty"`
	BlockTimeWarning         float64 `long:"block-time-warning" env:"BLOCK_TIME_WARNING" default:"5" description:"block time (s) above this takes the warning penalty"`
	BlockTimeCriticalPenalty float64 `long:"block-time-critical-penalty" env:"BLOCK_TIME_CRITICAL_PENALTY" default:"20" description:"health deduction for critical block time"`
	BlockTimeWarningPenalty  float64 `long:"block-time-warning-penalty" env:"BLOCK_TIME_WARNING_PENALTY" default:"10" description:"health deduction for slow block time"`

	GasCritical        float64 `long:"gas-critical" env:"GAS_CRITICAL" default:"0.90" description:"gas used/limit above this takes the critical penalty"`
	GasWarning         float64 `long:"gas-warning" env:"GAS_WARNING" default:"0.70" description:"gas used/limit above this takes the warning penalty"`
	GasCriticalPenalty float64 `long:"gas-critical-penalty" env:"GAS_CRITICAL_PENALTY" default:"15" description:"health deduction for critical gas usage"`
	GasWarningPenalty  float64 `long:"gas-warning-penalty" env:"GAS_WARNING_PENALTY" default:"10" description:"health deduction for high gas usage"`
}

// DefaultThresholds returns the stock health thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TPSCritical:              10,
		TPSWarning:               50,
		TPSCriticalPenalty:       20,
		TPSWarningPenalty:        10,
		BlockTimeCritical:        10,
		BlockTimeWarning:         5,
		BlockTimeCriticalPenalty: 20,
		BlockTimeWarningPenalty:  10,
		GasCritical:              0.90,
		GasWarning:               0.70,
		GasCriticalPenalty:       15,
		GasWarningPenalty:        10,
	}
}
