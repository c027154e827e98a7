package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

// Analytics aggregates persisted samples in [from, to]. An empty range yields zero averages.
func (r *Repository) Analytics(ctx context.Context, from, to time.Time) (model.Analytics, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("analytics", err, start)
	}()

	const query = `
SELECT
	count() AS samples,
	avgOrDefault(tps) AS avg_tps,
	maxOrDefault(tps) AS max_tps,
	avgOrDefault(block_time) AS avg_block_time,
	avgOrDefault(gas_price) AS avg_gas_price,
	avgOrDefault(network_health) AS avg_health,
	sum(toUInt64(block_transactions)) AS transactions
FROM chain_metrics FINAL
WHERE timestamp >= ? AND timestamp <= ?`

	rows, err := r.conn.Query(ctx, query, from.UTC(), to.UTC())
	if err != nil {
		return model.Analytics{}, fmt.Errorf("query analytics: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	out := model.Analytics{From: from.UTC(), To: to.UTC()}
	if !rows.Next() {
		err = fmt.Errorf("analytics row not found")
		return model.Analytics{}, err
	}
	if err = rows.Scan(
		&out.Samples,
		&out.AverageTPS,
		&out.MaxTPS,
		&out.AverageBlockTime,
		&out.AverageGasPrice,
		&out.AverageHealth,
		&out.Transactions,
	); err != nil {
		return model.Analytics{}, fmt.Errorf("scan analytics: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.Analytics{}, fmt.Errorf("iterate analytics: %w", err)
	}

	return out, nil
}
