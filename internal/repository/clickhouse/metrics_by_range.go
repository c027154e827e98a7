package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

// MetricsByRange returns samples with timestamps in [from, to], oldest first.
func (r *Repository) MetricsByRange(ctx context.Context, from, to time.Time) ([]model.MetricsSample, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("metrics_by_range", err, start)
	}()

	const query = `
SELECT
	block_number,
	gas_price,
	tps,
	block_time,
	network_health,
	total_transactions,
	block_transactions,
	gas_utilization,
	timestamp
FROM chain_metrics FINAL
WHERE timestamp >= ? AND timestamp <= ?
ORDER BY block_number`

	rows, err := r.conn.Query(ctx, query, from.UTC(), to.UTC())
	if err != nil {
		return nil, fmt.Errorf("query metrics by range: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	samples := make([]model.MetricsSample, 0)
	for rows.Next() {
		var (
			sample         model.MetricsSample
			total, inBlock uint32
		)
		if err = rows.Scan(
			&sample.BlockNumber,
			&sample.GasPrice,
			&sample.TPS,
			&sample.BlockTime,
			&sample.NetworkHealth,
			&total,
			&inBlock,
			&sample.GasUtilization,
			&sample.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan metrics sample: %w", err)
		}
		sample.TotalTransactions = int(total)
		sample.BlockTransactions = int(inBlock)
		samples = append(samples, sample)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate metrics samples: %w", err)
	}

	return samples, nil
}
