// Package ethereum adapts go-ethereum's ethclient to the chain.Upstream contract.
package ethereum

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// RPCClient is the subset of *ethclient.Client used by Source.
	RPCClient interface {
		BlockNumber(ctx context.Context) (uint64, error)
		BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
		TransactionByHash(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error)
		TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
		SuggestGasPrice(ctx context.Context) (*big.Int, error)
		SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
		Close()
	}
)

// ObservedClient wraps an RPCClient with metrics instrumentation.
type ObservedClient struct {
	client     RPCClient
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented RPC client.
func NewObservedClient(client RPCClient, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// BlockNumber returns the latest block number.
func (r *ObservedClient) BlockNumber(ctx context.Context) (n uint64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("block_number", err, started)
	}()
	return r.client.BlockNumber(ctx)
}

// BlockByNumber returns a full block.
func (r *ObservedClient) BlockByNumber(ctx context.Context, number *big.Int) (b *types.Block, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("block_by_number", err, started)
	}()
	return r.client.BlockByNumber(ctx, number)
}

// TransactionByHash returns a transaction and whether it is still pending.
func (r *ObservedClient) TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, pending bool, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("transaction_by_hash", err, started)
	}()
	return r.client.TransactionByHash(ctx, hash)
}

// TransactionReceipt returns the receipt of a mined transaction.
func (r *ObservedClient) TransactionReceipt(ctx context.Context, txHash common.Hash) (rc *types.Receipt, err error) {
	started := time.Now()
	defer func() {
		// not found is an expected answer for pending transactions
		if errors.Is(err, ethereum.NotFound) {
			r.rpcMetrics.Observe("transaction_receipt", nil, started)
			return
		}
		r.rpcMetrics.Observe("transaction_receipt", err, started)
	}()
	return r.client.TransactionReceipt(ctx, txHash)
}

// SuggestGasPrice returns the node's current gas price suggestion in wei.
func (r *ObservedClient) SuggestGasPrice(ctx context.Context) (price *big.Int, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("suggest_gas_price", err, started)
	}()
	return r.client.SuggestGasPrice(ctx)
}

// SubscribeNewHead opens a new head subscription.
func (r *ObservedClient) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (sub ethereum.Subscription, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("subscribe_new_head", err, started)
	}()
	return r.client.SubscribeNewHead(ctx, ch)
}

// Close releases the underlying connection.
func (r *ObservedClient) Close() {
	r.client.Close()
}
