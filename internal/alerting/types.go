package alerting

import (
	"context"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		CreateAlert(ctx context.Context, alert model.Alert) error
	}
	Metrics interface {
		ObserveAlert(alertType string, severity string, delivered bool)
	}
)
