package hub

import "time"

// Intervals sets the broadcast period of each timed topic.
type Intervals struct {
	LiveMetrics     time.Duration `long:"live-metrics-interval" env:"LIVE_METRICS_INTERVAL" default:"5s" description:"live_metrics broadcast period"`
	Transactions    time.Duration `long:"transactions-interval" env:"TRANSACTIONS_INTERVAL" default:"3s" description:"transactions broadcast period"`
	NetworkHealth   time.Duration `long:"network-health-interval" env:"NETWORK_HEALTH_INTERVAL" default:"10s" description:"network_health broadcast period"`
	ConnectionStats time.Duration `long:"connection-stats-interval" env:"CONNECTION_STATS_INTERVAL" default:"60s" description:"connection_stats broadcast period"`
}

// DefaultIntervals mirrors the flag defaults.
func DefaultIntervals() Intervals {
	return Intervals{
		LiveMetrics:     5 * time.Second,
		Transactions:    3 * time.Second,
		NetworkHealth:   10 * time.Second,
		ConnectionStats: 60 * time.Second,
	}
}

func (i Intervals) byTopic() map[Topic]time.Duration {
	d := DefaultIntervals()
	pick := func(v, def time.Duration) time.Duration {
		if v <= 0 {
			return def
		}
		return v
	}
	return map[Topic]time.Duration{
		TopicLiveMetrics:     pick(i.LiveMetrics, d.LiveMetrics),
		TopicTransactions:    pick(i.Transactions, d.Transactions),
		TopicNetworkHealth:   pick(i.NetworkHealth, d.NetworkHealth),
		TopicConnectionStats: pick(i.ConnectionStats, d.ConnectionStats),
	}
}

const (
	snapshotTransactions = 10
	defaultHistoryLimit  = 100
	defaultTxLimit       = 20
	defaultAlertLimit    = 50
	defaultRange         = 24 * time.Hour
	queryTimeout         = 10 * time.Second
)
