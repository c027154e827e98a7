package transport

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Health service names reported next to the overall "" service.
const (
	ServiceUpstream = "chainpulse.upstream"
	ServiceStorage  = "chainpulse.storage"
)

const pingTimeout = 3 * time.Second

// HealthReporter polls upstream connectivity and storage reachability and publishes them on a
// gRPC health server. The overall status is SERVING while the upstream is connected; storage
// only affects its own service.
type HealthReporter struct {
	server    *health.Server
	upstream  UpstreamStatus
	storage   Pinger
	observers []ConnectivityObserver
	interval  time.Duration
	logger    *zap.Logger
}

// NewHealthReporter builds a reporter. storage may be nil.
func NewHealthReporter(
	server *health.Server,
	upstream UpstreamStatus,
	storage Pinger,
	interval time.Duration,
	logger *zap.Logger,
	observers ...ConnectivityObserver,
) *HealthReporter {
	return &HealthReporter{
		server:    server,
		upstream:  upstream,
		storage:   storage,
		observers: observers,
		interval:  interval,
		logger:    logger.Named("health"),
	}
}

// Run checks once immediately and then every interval until ctx is done, after which every
// service is marked NOT_SERVING.
func (h *HealthReporter) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		h.Check(ctx)
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-ticker.C:
		}
	}
}

// Check runs one probe round.
func (h *HealthReporter) Check(ctx context.Context) {
	connected := h.upstream.Connected()
	h.server.SetServingStatus(ServiceUpstream, servingStatus(connected))
	h.server.SetServingStatus("", servingStatus(connected))
	for _, o := range h.observers {
		o.ObserveConnectivity(ctx, connected)
	}
	if !connected {
		h.logger.Warn("upstream disconnected", zap.Uint64("head", h.upstream.Head()))
	}

	if h.storage == nil {
		return
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	err := h.storage.Ping(pingCtx)
	h.server.SetServingStatus(ServiceStorage, servingStatus(err == nil))
	if err != nil {
		h.logger.Warn("storage unreachable", zap.Error(err))
	}
}

func servingStatus(ok bool) healthpb.HealthCheckResponse_ServingStatus {
	if ok {
		return healthpb.HealthCheckResponse_SERVING
	}
	return healthpb.HealthCheckResponse_NOT_SERVING
}
