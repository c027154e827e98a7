package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

const selectAlertColumns = `
SELECT
	id,
	type,
	severity,
	message,
	value,
	threshold,
	block_number,
	acknowledged,
	created_at
FROM alerts FINAL`

// ListAlerts returns up to limit live alerts, newest first.
func (r *Repository) ListAlerts(ctx context.Context, limit int) ([]model.Alert, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("list_alerts", err, start)
	}()

	if limit <= 0 {
		return []model.Alert{}, nil
	}

	query := selectAlertColumns + `
WHERE is_deleted = 0
ORDER BY created_at DESC, id
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("query alerts: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	alerts := make([]model.Alert, 0, limit)
	for rows.Next() {
		var alert model.Alert
		if alert, err = scanAlert(rows); err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate alerts: %w", err)
	}

	return alerts, nil
}

// AlertByID returns one live alert or ErrNotFound.
func (r *Repository) AlertByID(ctx context.Context, id string) (model.Alert, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("alert_by_id", err, start)
	}()

	query := selectAlertColumns + `
WHERE id = ? AND is_deleted = 0`

	rows, err := r.conn.Query(ctx, query, id)
	if err != nil {
		return model.Alert{}, fmt.Errorf("query alert %s: %w", id, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Alert{}, fmt.Errorf("iterate alert %s: %w", id, err)
		}
		err = fmt.Errorf("alert %s: %w", id, ErrNotFound)
		return model.Alert{}, err
	}

	alert, err := scanAlert(rows)
	if err != nil {
		return model.Alert{}, err
	}
	return alert, nil
}

func scanAlert(rows driver.Rows) (model.Alert, error) {
	var (
		alert            model.Alert
		alertType, level string
	)
	if err := rows.Scan(
		&alert.ID,
		&alertType,
		&level,
		&alert.Message,
		&alert.Value,
		&alert.Threshold,
		&alert.BlockNumber,
		&alert.Acknowledged,
		&alert.CreatedAt,
	); err != nil {
		return model.Alert{}, fmt.Errorf("scan alert: %w", err)
	}
	alert.Type = model.AlertType(alertType)
	alert.Severity = model.AlertSeverity(level)
	return alert, nil
}
