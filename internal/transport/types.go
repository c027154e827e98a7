// Package transport exposes the HTTP, WebSocket and gRPC surfaces.
package transport

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/chainpulse-backend/internal/hub"
	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Hub interface {
		Connect(conn hub.Conn) (*hub.Subscriber, error)
		HandleMessage(ctx context.Context, id string, raw []byte)
		Disconnect(id string)
	}
	MetricsSource interface {
		CurrentMetrics() (model.MetricsSample, bool)
	}
	Requester interface {
		Request(ctx context.Context, requestType string, rawParams json.RawMessage) hub.Response
	}
	AlertStore interface {
		AlertByID(ctx context.Context, id string) (model.Alert, error)
		UpdateAlert(ctx context.Context, alert model.Alert) error
		DeleteAlert(ctx context.Context, id string) error
	}
	UpstreamStatus interface {
		Connected() bool
		Head() uint64
	}
	Pinger interface {
		Ping(ctx context.Context) error
	}
	ConnectivityObserver interface {
		ObserveConnectivity(ctx context.Context, connected bool)
	}
)
