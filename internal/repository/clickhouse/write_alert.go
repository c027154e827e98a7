package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

const insertAlertQuery = `
INSERT INTO alerts (
	id,
	type,
	severity,
	message,
	value,
	threshold,
	block_number,
	acknowledged,
	created_at,
	version,
	is_deleted
) VALUES`

// CreateAlert stores a new alert.
func (r *Repository) CreateAlert(ctx context.Context, alert model.Alert) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("create_alert", err, start)
	}()

	err = r.writeAlert(ctx, alert, false)
	return err
}

// UpdateAlert replaces the stored state of an alert.
func (r *Repository) UpdateAlert(ctx context.Context, alert model.Alert) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_alert", err, start)
	}()

	err = r.writeAlert(ctx, alert, false)
	return err
}

// DeleteAlert hides an alert from every later read.
func (r *Repository) DeleteAlert(ctx context.Context, id string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("delete_alert", err, start)
	}()

	err = r.writeAlert(ctx, model.Alert{ID: id}, true)
	return err
}

func (r *Repository) writeAlert(ctx context.Context, alert model.Alert, deleted bool) error {
	if alert.ID == "" {
		return errors.New("alert id is required")
	}

	batch, err := r.conn.PrepareBatch(ctx, insertAlertQuery)
	if err != nil {
		return fmt.Errorf("prepare alert batch: %w", err)
	}

	var tombstone uint8
	if deleted {
		tombstone = 1
	}
	if err = batch.Append(
		alert.ID,
		string(alert.Type),
		string(alert.Severity),
		alert.Message,
		alert.Value,
		alert.Threshold,
		alert.BlockNumber,
		alert.Acknowledged,
		alert.CreatedAt.UTC(),
		uint64(r.now().UnixNano()),
		tombstone,
	); err != nil {
		return fmt.Errorf("append alert: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert alert %s: %w", alert.ID, err)
	}
	return nil
}
