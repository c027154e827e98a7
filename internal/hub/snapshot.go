package hub

import (
	"context"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
	"go.uber.org/zap"
)

// topicMessage builds the message a room receives for topic, reading the source once.
func (h *Hub) topicMessage(ctx context.Context, topic Topic) outbound {
	if topic == TopicConnectionStats {
		return outbound{Event: EventConnectionStats, Data: h.Stats()}
	}
	return outbound{Event: EventSubscriptionData, Data: SubscriptionData{
		Type:      topic,
		Data:      h.snapshot(ctx, topic),
		Timestamp: h.now().UTC(),
	}}
}

func (h *Hub) snapshot(ctx context.Context, topic Topic) any {
	switch topic {
	case TopicLiveMetrics:
		if m, ok := h.source.CurrentMetrics(); ok {
			return m
		}
		return nil
	case TopicTransactions:
		return h.source.RecentTransactions(snapshotTransactions)
	case TopicNetworkHealth:
		return h.networkHealth()
	case TopicAlerts:
		return h.recentAlerts(ctx)
	case TopicConnectionStats:
		return h.Stats()
	}
	return nil
}

func (h *Hub) networkHealth() NetworkHealth {
	processed := h.source.ProcessedMetrics()
	out := NetworkHealth{
		AverageHealth:     processed.AverageHealth,
		UpstreamConnected: h.source.Connected(),
		Head:              h.source.Head(),
	}
	if c := processed.Current; c != nil {
		out.NetworkHealth = c.NetworkHealth
		out.TPS = c.TPS
		out.BlockTime = c.BlockTime
		out.GasUtilization = c.GasUtilization
	}
	return out
}

func (h *Hub) recentAlerts(ctx context.Context) []model.Alert {
	if h.persistence == nil {
		return []model.Alert{}
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	alerts, err := h.persistence.ListAlerts(ctx, defaultAlertLimit)
	if err != nil {
		h.logger.Warn("list alerts for snapshot", zap.Error(err))
		return []model.Alert{}
	}
	return alerts
}
