// Package clickhouse persists metrics samples, transactions and alerts in ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=driver_mocks_test.go -package=$GOPACKAGE github.com/ClickHouse/clickhouse-go/v2/lib/driver Rows

type (
	// Conn is the subset of clickhouse.Conn the repository uses.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
		Ping(ctx context.Context) error
		Close() error
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = model.ErrNotFound

type Repository struct {
	conn    Conn
	metrics Metrics
	now     func() time.Time
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics, now: time.Now}, nil
}

// Ping checks that the server is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("ping", err, start)
	}()

	if err = r.conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (r *Repository) Close() error {
	return r.conn.Close()
}
