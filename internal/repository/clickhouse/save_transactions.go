package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

// SaveTransactions stores transaction records.
func (r *Repository) SaveTransactions(ctx context.Context, txs []model.TransactionRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO chain_transactions (
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
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			tx.Hash,
			tx.From,
			tx.To,
			tx.Value,
			tx.GasPrice,
			tx.GasUsed,
			tx.GasLimit,
			tx.BlockNumber,
			tx.BlockHash,
			tx.Timestamp.UTC(),
			string(tx.Status),
			string(tx.Type),
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
