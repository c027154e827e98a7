package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

// TransactionsByRange returns up to limit transactions in [from, to], newest first.
func (r *Repository) TransactionsByRange(ctx context.Context, from, to time.Time, limit int) ([]model.TransactionRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transactions_by_range", err, start)
	}()

	if limit <= 0 {
		return []model.TransactionRecord{}, nil
	}

	const query = `
SELECT
	hash,
	from_address,
	to_address,
	value,
	gas_price,
	gas_used,
	gas_limit,
	block_number,
	block_hash,
	timestamp,
	status,
	type
FROM chain_transactions FINAL
WHERE timestamp >= ? AND timestamp <= ?
ORDER BY block_number DESC, hash
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, from.UTC(), to.UTC(), uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("query transactions by range: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	txs := make([]model.TransactionRecord, 0, limit)
	for rows.Next() {
		var (
			tx             model.TransactionRecord
			status, txType string
		)
		if err = rows.Scan(
			&tx.Hash,
			&tx.From,
			&tx.To,
			&tx.Value,
			&tx.GasPrice,
			&tx.GasUsed,
			&tx.GasLimit,
			&tx.BlockNumber,
			&tx.BlockHash,
			&tx.Timestamp,
			&status,
			&txType,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx.Status = model.TxStatus(status)
		tx.Type = model.TxType(txType)
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txs, nil
}
