package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
	"github.com/goodnatureofminers/chainpulse-backend/pkg/safe"
)

// SaveMetricsBatch stores metrics samples. Re-inserting a block number replaces the earlier row.
func (r *Repository) SaveMetricsBatch(ctx context.Context, samples []model.MetricsSample) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_metrics_batch", err, start)
	}()

	if len(samples) == 0 {
		return nil
	}

	const query = `
INSERT INTO chain_metrics (
	block_number,
	gas_price,
	tps,
	block_time,
	network_health,
	total_transactions,
	block_transactions,
	gas_utilization,
	timestamp
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare metrics batch: %w", err)
	}

	for _, sample := range samples {
		var total, inBlock uint32
		if total, err = safe.Uint32(sample.TotalTransactions); err != nil {
			return fmt.Errorf("total transactions of block %d: %w", sample.BlockNumber, err)
		}
		if inBlock, err = safe.Uint32(sample.BlockTransactions); err != nil {
			return fmt.Errorf("block transactions of block %d: %w", sample.BlockNumber, err)
		}
		if err = batch.Append(
			sample.BlockNumber,
			sample.GasPrice,
			sample.TPS,
			sample.BlockTime,
			sample.NetworkHealth,
			total,
			inBlock,
			sample.GasUtilization,
			sample.Timestamp.UTC(),
		); err != nil {
			return fmt.Errorf("append metrics sample: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert metrics samples: %w", err)
	}
	return nil
}
