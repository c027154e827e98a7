package hub

import (
	"context"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	MetricsSource interface {
		CurrentMetrics() (model.MetricsSample, bool)
		MetricsHistory(limit int) []model.MetricsSample
		RecentTransactions(limit int) []model.TransactionRecord
		ProcessedMetrics() model.ProcessedMetrics
		Head() uint64
		Connected() bool
	}
	Persistence interface {
		MetricsByRange(ctx context.Context, from, to time.Time) ([]model.MetricsSample, error)
		TransactionsByRange(ctx context.Context, from, to time.Time, limit int) ([]model.TransactionRecord, error)
		ListAlerts(ctx context.Context, limit int) ([]model.Alert, error)
		Analytics(ctx context.Context, from, to time.Time) (model.Analytics, error)
	}
	// Conn is one subscriber transport. Send must not block; it reports false when the message
	// was dropped.
	Conn interface {
		Send(msg []byte) bool
		Close() error
		RemoteAddr() string
	}
	Metrics interface {
		SetSubscribers(n int)
		SetRoomMembers(topic string, n int)
		ObserveBroadcast(topic string, recipients int)
		ObserveSkippedBroadcast(topic string)
		ObserveRequest(requestType string, err error, started time.Time)
		ObserveDropped(event string)
	}
)
