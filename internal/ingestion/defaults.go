package ingestion

import "time"

const (
	defaultHistoryCapacity   = 1000
	defaultPoolCapacity      = 100
	defaultTxPerBlock        = 10
	defaultTxWorkers         = 4
	defaultConnectTimeout    = 10 * time.Second
	defaultPollInterval      = 5 * time.Second
	defaultReconnectBase     = time.Second
	defaultReconnectMax      = 30 * time.Second
	defaultReconnectAttempts = 10

	headBufferSize = 16

	persistBatchSize     = 100
	persistFlushInterval = 5 * time.Second
	persistRPS           = 10

	sourceStream = "stream"
	sourcePoll   = "poll"
	sourceInit   = "init"

	rolePrimary  = "primary"
	roleFallback = "fallback"
)
