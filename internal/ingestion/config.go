package ingestion

import "time"

// Config controls upstream endpoints, buffer sizes and loop timings.
type Config struct {
	PrimaryEndpoint   string        `long:"primary-endpoint" env:"PRIMARY_ENDPOINT" description:"Primary upstream JSON-RPC endpoint (ws:// for streaming)" required:"true"`
	FallbackEndpoint  string        `long:"fallback-endpoint" env:"FALLBACK_ENDPOINT" description:"Fallback upstream JSON-RPC endpoint"`
	ConnectTimeout    time.Duration `long:"connect-timeout" env:"CONNECT_TIMEOUT" default:"10s" description:"Timeout for dialing and probing one endpoint"`
	PollInterval      time.Duration `long:"poll-interval" env:"POLL_INTERVAL" default:"5s" description:"Head polling interval"`
	ReconnectBase     time.Duration `long:"reconnect-base" env:"RECONNECT_BASE" default:"1s" description:"First stream reconnect delay"`
	ReconnectMax      time.Duration `long:"reconnect-max" env:"RECONNECT_MAX" default:"30s" description:"Maximum stream reconnect delay"`
	ReconnectAttempts int           `long:"reconnect-attempts" env:"RECONNECT_ATTEMPTS" default:"10" description:"Stream reconnect attempts before relying on polling only (negative disables reconnects)"`
	HistoryCapacity   int           `long:"history-capacity" env:"HISTORY_CAPACITY" default:"1000" description:"Metrics samples kept in memory"`
	PoolCapacity      int           `long:"pool-capacity" env:"POOL_CAPACITY" default:"100" description:"Recent transactions kept in memory"`
	TxPerBlock        int           `long:"tx-per-block" env:"TX_PER_BLOCK" default:"10" description:"Transactions fetched per block (negative disables transaction ingestion)"`
	TxWorkers         int           `long:"tx-workers" env:"TX_WORKERS" default:"4" description:"Concurrent transaction fetches per block"`
}

// DefaultConfig returns a Config with the built-in defaults and no endpoints.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout:    defaultConnectTimeout,
		PollInterval:      defaultPollInterval,
		ReconnectBase:     defaultReconnectBase,
		ReconnectMax:      defaultReconnectMax,
		ReconnectAttempts: defaultReconnectAttempts,
		HistoryCapacity:   defaultHistoryCapacity,
		PoolCapacity:      defaultPoolCapacity,
		TxPerBlock:        defaultTxPerBlock,
		TxWorkers:         defaultTxWorkers,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = d.ConnectTimeout
	}
	if c.PollInterval <= 0 {
		c.PollInterval = d.PollInterval
	}
	if c.ReconnectBase <= 0 {
		c.ReconnectBase = d.ReconnectBase
	}
	if c.ReconnectMax <= 0 {
		c.ReconnectMax = d.ReconnectMax
	}
	c.ReconnectAttempts = orDisabled(c.ReconnectAttempts, d.ReconnectAttempts)
	if c.HistoryCapacity <= 0 {
		c.HistoryCapacity = d.HistoryCapacity
	}
	if c.PoolCapacity <= 0 {
		c.PoolCapacity = d.PoolCapacity
	}
	c.TxPerBlock = orDisabled(c.TxPerBlock, d.TxPerBlock)
	if c.TxWorkers <= 0 {
		c.TxWorkers = d.TxWorkers
	}
	return c
}

// orDisabled maps an unset value to def and a negative one to 0.
func orDisabled(v, def int) int {
	switch {
	case v == 0:
		return def
	case v < 0:
		return 0
	default:
		return v
	}
}

type endpoint struct {
	role string
	url  string
}

func (c Config) endpoints() []endpoint {
	out := make([]endpoint, 0, 2)
	if c.PrimaryEndpoint != "" {
		out = append(out, endpoint{role: rolePrimary, url: c.PrimaryEndpoint})
	}
	if c.FallbackEndpoint != "" {
		out = append(out, endpoint{role: roleFallback, url: c.FallbackEndpoint})
	}
	return out
}
