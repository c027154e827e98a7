package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goodnatureofminers/chainpulse-backend/internal/chain"
	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
	"go.uber.org/zap"
)

// Source implements chain.Upstream on top of an Ethereum JSON-RPC client.
type Source struct {
	rpc       RPCClient
	selectors map[Selector]model.TxType
	logger    *zap.Logger
}

// NewSource creates a Source for an already dialed client.
func NewSource(rpc RPCClient, selectors map[Selector]model.TxType, logger *zap.Logger) *Source {
	if selectors == nil {
		selectors = DefaultSelectors()
	}
	return &Source{
		rpc:       rpc,
		selectors: selectors,
		logger:    logger,
	}
}

// LatestHeight returns the latest block number from the node.
func (s *Source) LatestHeight(ctx context.Context) (uint64, error) {
	return s.rpc.BlockNumber(ctx)
}

// FetchBlock retrieves the block at height with its transaction hashes.
func (s *Source) FetchBlock(ctx context.Context, height uint64) (*chain.Block, error) {
	b, err := s.rpc.BlockByNumber(ctx, new(big.Int).SetUint64(height))
	if err != nil {
		return nil, fmt.Errorf("get block %d: %w", height, err)
	}
	if b == nil {
		return nil, fmt.Errorf("get block %d: %w", height, ethereum.NotFound)
	}
	return BuildBlock(b)
}

// FetchTransaction retrieves a transaction and its receipt. A missing receipt yields a pending record.
func (s *Source) FetchTransaction(ctx context.Context, hash string, block *chain.Block) (model.TransactionRecord, error) {
	h, ok := normalizeHash(hash)
	if !ok {
		return model.TransactionRecord{}, fmt.Errorf("invalid transaction hash %q", hash)
	}

	tx, _, err := s.rpc.TransactionByHash(ctx, h)
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("get transaction %s: %w", hash, err)
	}

	receipt, err := s.rpc.TransactionReceipt(ctx, h)
	if err != nil {
		if !errors.Is(err, ethereum.NotFound) {
			return model.TransactionRecord{}, fmt.Errorf("get receipt %s: %w", hash, err)
		}
		receipt = nil
	}

	from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		s.logger.Debug("recover sender failed", zap.String("tx", hash), zap.Error(err))
	}

	return BuildRecord(tx, receipt, from, block, s.selectors), nil
}

// GasPrice returns the suggested gas price in gwei.
func (s *Source) GasPrice(ctx context.Context) (float64, error) {
	price, err := s.rpc.SuggestGasPrice(ctx)
	if err != nil {
		return 0, fmt.Errorf("suggest gas price: %w", err)
	}
	return GweiFloat(price), nil
}

// SubscribeHeads forwards new head numbers into ch.
func (s *Source) SubscribeHeads(ctx context.Context, ch chan<- uint64) (chain.Subscription, error) {
	headers := make(chan *types.Header, 16)
	sub, err := s.rpc.SubscribeNewHead(ctx, headers)
	if errors.Is(err, rpc.ErrNotificationsUnsupported) {
		return nil, chain.ErrStreamingUnsupported
	}
	if err != nil {
		return nil, fmt.Errorf("subscribe new heads: %w", err)
	}

	hs := &headSubscription{sub: sub, done: make(chan struct{})}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hs.done:
				return
			case h := <-headers:
				if h == nil || h.Number == nil || !h.Number.IsUint64() {
					continue
				}
				select {
				case ch <- h.Number.Uint64():
				case <-ctx.Done():
					return
				case <-hs.done:
					return
				}
			}
		}
	}()
	return hs, nil
}

// Close releases the client.
func (s *Source) Close() {
	s.rpc.Close()
}

type headSubscription struct {
	sub  ethereum.Subscription
	done chan struct{}
	once sync.Once
}

func (h *headSubscription) Err() <-chan error {
	return h.sub.Err()
}

func (h *headSubscription) Unsubscribe() {
	h.once.Do(func() {
		close(h.done)
		h.sub.Unsubscribe()
	})
}
