package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/goodnatureofminers/chainpulse-backend/internal/chain"
	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
	"go.uber.org/zap"
)

// MetricsFactory builds RPC metrics for an endpoint role.
type MetricsFactory func(endpoint string) RPCMetrics

// Connector dials endpoints with ethclient and probes them before handing them out.
type Connector struct {
	metrics   MetricsFactory
	selectors map[Selector]model.TxType
	logger    *zap.Logger
}

// NewConnector constructs a Connector.
func NewConnector(metrics MetricsFactory, logger *zap.Logger) *Connector {
	return &Connector{
		metrics:   metrics,
		selectors: DefaultSelectors(),
		logger:    logger,
	}
}

// Connect dials endpoint and verifies it answers eth_blockNumber. ctx bounds both steps.
func (c *Connector) Connect(ctx context.Context, endpoint string) (chain.Upstream, error) {
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", redact(endpoint), err)
	}

	observed := NewObservedClient(client, c.metrics(redact(endpoint)))
	if _, err := observed.BlockNumber(ctx); err != nil {
		observed.Close()
		return nil, fmt.Errorf("probe %s: %w", redact(endpoint), err)
	}

	return NewSource(observed, c.selectors, c.logger.With(zap.String("endpoint", redact(endpoint)))), nil
}
