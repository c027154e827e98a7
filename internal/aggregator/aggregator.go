// Package aggregator derives TPS, block time and a network health score from recent samples.
package aggregator

import (
	"errors"
	"fmt"
	"math"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

const (
	// TPSWindow is the number of most recent samples used for TPS.
	TPSWindow = 10
	// BlockTimeWindow is the number of most recent samples used for block time.
	BlockTimeWindow = 5

	maxHealth = 100
)

// ErrComputation marks a metrics computation that produced an unusable value.
var ErrComputation = errors.New("metrics computation failed")

// Values holds the derived metrics for one new sample.
type Values struct {
	TPS           float64
	BlockTime     float64
	NetworkHealth float64
}

// Aggregator computes derived metrics using a fixed set of health thresholds.
type Aggregator struct {
	thresholds Thresholds
}

// New constructs an Aggregator.
func New(thresholds Thresholds) *Aggregator {
	return &Aggregator{thresholds: thresholds}
}

// Thresholds returns the configured health thresholds.
func (a *Aggregator) Thresholds() Thresholds {
	return a.thresholds
}

// Compute derives the metrics for the newest sample of window. gasRatio is gasUsed/gasLimit
// of the block that produced that sample.
func (a *Aggregator) Compute(window []model.MetricsSample, gasRatio float64) (Values, error) {
	tps := TPS(window)
	blockTime := BlockTime(window)
	health := Health(tps, blockTime, gasRatio, a.thresholds)

	for name, v := range map[string]float64{"tps": tps, "block time": blockTime, "health": health, "gas ratio": gasRatio} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Values{}, fmt.Errorf("%w: %s is %v", ErrComputation, name, v)
		}
	}

	return Values{TPS: tps, BlockTime: blockTime, NetworkHealth: health}, nil
}

// TPS sums TotalTransactions over the last TPSWindow samples and divides by the time span
// between the oldest and newest of them. It is 0 with fewer than two samples or a non-positive span.
func TPS(samples []model.MetricsSample) float64 {
	window := tail(samples, TPSWindow)
	if len(window) < 2 {
		return 0
	}

	span := window[len(window)-1].Timestamp.Sub(window[0].Timestamp).Seconds()
	if span <= 0 {
		return 0
	}

	total := 0
	for _, s := range window {
		total += s.TotalTransactions
	}
	return float64(total) / span
}

// BlockTime is the mean timestamp delta, in seconds, across the last BlockTimeWindow samples.
func BlockTime(samples []model.MetricsSample) float64 {
	window := tail(samples, BlockTimeWindow)
	if len(window) < 2 {
		return 0
	}

	var sum float64
	for i := 1; i < len(window); i++ {
		sum += window[i].Timestamp.Sub(window[i-1].Timestamp).Seconds()
	}
	return sum / float64(len(window)-1)
}

// Health scores the network from 100 down, applying one penalty per dimension and flooring at 0.
func Health(tps, blockTime, gasRatio float64, t Thresholds) float64 {
	score := float64(maxHealth)

	switch {
	case tps < t.TPSCritical:
		score -= t.TPSCriticalPenalty
	case tps < t.TPSWarning:
		score -= t.TPSWarningPenalty
	}

	switch {
	case blockTime > t.BlockTimeCritical:
		score -= t.BlockTimeCriticalPenalty
	case blockTime > t.BlockTimeWarning:
		score -= t.BlockTimeWarningPenalty
	}

	switch {
	case gasRatio > t.GasCritical:
		score -= t.GasCriticalPenalty
	case gasRatio > t.GasWarning:
		score -= t.GasWarningPenalty
	}

	return math.Max(score, 0)
}

// Summarize builds the processed metrics view over samples, newest last.
func Summarize(samples []model.MetricsSample) model.ProcessedMetrics {
	if len(samples) == 0 {
		return model.ProcessedMetrics{}
	}

	current := samples[len(samples)-1]
	out := model.ProcessedMetrics{
		Current:     &current,
		MinGasPrice: math.Inf(1),
		Samples:     len(samples),
	}

	for _, s := range samples {
		out.AverageTPS += s.TPS
		out.AverageBlockTime += s.BlockTime
		out.AverageGasPrice += s.GasPrice
		out.AverageHealth += s.NetworkHealth
		out.MinGasPrice = math.Min(out.MinGasPrice, s.GasPrice)
		out.MaxGasPrice = math.Max(out.MaxGasPrice, s.GasPrice)
	}

	n := float64(len(samples))
	out.AverageTPS /= n
	out.AverageBlockTime /= n
	out.AverageGasPrice /= n
	out.AverageHealth /= n
	return out
}

// GasRatio returns used/limit, or 0 when the limit is zero.
func GasRatio(used, limit uint64) float64 {
	if limit == 0 {
		return 0
	}
	return float64(used) / float64(limit)
}

func tail(samples []model.MetricsSample, n int) []model.MetricsSample {
	if len(samples) <= n {
		return samples
	}
	return samples[len(samples)-n:]
}
