package ingestion

import (
	"context"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/chain"
	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Connector interface {
		Connect(ctx context.Context, endpoint string) (chain.Upstream, error)
	}
	Upstream interface {
		chain.Upstream
	}
	Subscription interface {
		chain.Subscription
	}
	Persistence interface {
		SaveMetricsBatch(ctx context.Context, samples []model.MetricsSample) error
		SaveTransactions(ctx context.Context, txs []model.TransactionRecord) error
	}
	// SampleObserver is notified after every sample appended to history.
	SampleObserver interface {
		ObserveSample(ctx context.Context, sample model.MetricsSample)
	}
	Metrics interface {
		ObserveBlock(err error, started time.Time)
		ObserveTransaction(err error)
		ObserveDiscard(source string)
		ObserveReconnect(attempt int)
		SetHead(height uint64)
		SetConnected(endpoint string, connected bool)
		SetBuffers(history, pool int)
	}
)
