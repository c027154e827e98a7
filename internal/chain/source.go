// Package chain defines the upstream contract shared by ingestion components.
package chain

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

// ErrStreamingUnsupported is returned by SubscribeHeads when the endpoint cannot push heads.
var ErrStreamingUnsupported = errors.New("upstream does not support head subscriptions")

// Upstream is one connected chain endpoint.
type Upstream interface {
	// LatestHeight returns the current head number.
	LatestHeight(ctx context.Context) (uint64, error)
	// FetchBlock returns the block at height with its transaction hashes.
	FetchBlock(ctx context.Context, height uint64) (*Block, error)
	// FetchTransaction fetches a transaction and its receipt and normalizes them.
	FetchTransaction(ctx context.Context, hash string, block *Block) (model.TransactionRecord, error)
	// GasPrice returns the current suggested gas price in gwei.
	GasPrice(ctx context.Context) (float64, error)
	// SubscribeHeads streams new head heights into ch until the subscription fails.
	SubscribeHeads(ctx context.Context, ch chan<- uint64) (Subscription, error)
	Close()
}

// Connector opens an Upstream for an endpoint URL.
type Connector interface {
	Connect(ctx context.Context, endpoint string) (Upstream, error)
}

// Subscription is a live head stream.
type Subscription interface {
	Err() <-chan error
	Unsubscribe()
}

// Block is the subset of a block the engine needs.
type Block struct {
	Number    uint64
	Hash      string
	Timestamp time.Time
	GasUsed   uint64
	GasLimit  uint64
	TxHashes  []string
}
