package hub

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Request types.
const (
	RequestMetricsHistory         = "metrics_history"
	RequestRecentTransactions     = "recent_transactions"
	RequestProcessedMetrics       = "processed_metrics"
	RequestAlerts                 = "alerts"
	RequestExport                 = "export"
	RequestConnectionStats        = "connection_stats"
	RequestHistoricalMetrics      = "historical_metrics"
	RequestHistoricalTransactions = "historical_transactions"
	RequestAnalytics              = "analytics"
)

const publicRequestError = "request failed"

// Request answers a one-shot query. Failures never expose internal detail.
func (h *Hub) Request(ctx context.Context, requestType string, rawParams json.RawMessage) Response {
	started := time.Now()

	var params QueryParams
	if len(rawParams) > 0 {
		if err := json.Unmarshal(rawParams, &params); err != nil {
			h.metrics.ObserveRequest(requestType, err, started)
			return Response{Error: "invalid params"}
		}
	}

	data, err := h.query(ctx, requestType, params)
	h.metrics.ObserveRequest(requestType, err, started)
	if err != nil {
		var subErr *SubscriptionError
		switch {
		case errors.As(err, &subErr):
			return Response{Error: subErr.Error()}
		case errors.Is(err, ErrPersistenceUnavailable):
			return Response{Error: err.Error()}
		}
		h.logger.Error("request failed", zap.String("type", requestType), zap.Error(err))
		return Response{Error: publicRequestError}
	}
	return Response{Success: true, Data: data}
}

func (h *Hub) query(ctx context.Context, requestType string, p QueryParams) (any, error) {
	switch requestType {
	case RequestMetricsHistory:
		return h.source.MetricsHistory(limitOr(p.Limit, defaultHistoryLimit)), nil
	case RequestRecentTransactions:
		return h.source.RecentTransactions(limitOr(p.Limit, defaultTxLimit)), nil
	case RequestProcessedMetrics:
		return h.source.ProcessedMetrics(), nil
	case RequestConnectionStats:
		return h.Stats(), nil
	case RequestExport:
		return Export{
			Metrics:      h.source.MetricsHistory(0),
			Transactions: h.source.RecentTransactions(0),
			ExportedAt:   h.now().UTC(),
		}, nil
	case RequestAlerts, RequestHistoricalMetrics, RequestHistoricalTransactions, RequestAnalytics:
		return h.storedQuery(ctx, requestType, p)
	}
	return nil, &SubscriptionError{Kind: "request type", Name: requestType}
}

func (h *Hub) storedQuery(ctx context.Context, requestType string, p QueryParams) (any, error) {
	if h.persistence == nil {
		return nil, ErrPersistenceUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	from, to := h.window(p)
	switch requestType {
	case RequestAlerts:
		return h.persistence.ListAlerts(ctx, limitOr(p.Limit, defaultAlertLimit))
	case RequestHistoricalMetrics:
		return h.persistence.MetricsByRange(ctx, from, to)
	case RequestHistoricalTransactions:
		return h.persistence.TransactionsByRange(ctx, from, to, limitOr(p.Limit, defaultTxLimit))
	default:
		return h.persistence.Analytics(ctx, from, to)
	}
}

// window defaults to the last 24 hours.
func (h *Hub) window(p QueryParams) (time.Time, time.Time) {
	to := p.To
	if to.IsZero() {
		to = h.now().UTC()
	}
	from := p.From
	if from.IsZero() || !from.Before(to) {
		from = to.Add(-defaultRange)
	}
	return from, to
}

func limitOr(limit, def int) int {
	if limit <= 0 {
		return def
	}
	return limit
}

// HandleMessage decodes one inbound frame from subscriber id and answers it. Malformed or unknown
// messages get an error frame; the connection stays open.
func (h *Hub) HandleMessage(ctx context.Context, id string, raw []byte) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	h.mu.Unlock()
	if !ok {
		return
	}

	var in Envelope
	if err := json.Unmarshal(raw, &in); err != nil {
		h.send(sub, outbound{Event: EventError, Data: ErrorMessage{Message: "malformed message"}})
		return
	}

	switch in.Event {
	case EventSubscribe, EventUnsubscribe:
		var req SubscribeRequest
		if err := json.Unmarshal(in.Data, &req); err != nil {
			h.send(sub, outbound{Event: EventError, ID: in.ID, Data: ErrorMessage{Message: "malformed " + in.Event}})
			return
		}
		var err error
		if in.Event == EventSubscribe {
			err = h.Subscribe(ctx, id, req.Type)
		} else {
			err = h.Unsubscribe(id, req.Type)
		}
		if err != nil {
			h.send(sub, outbound{Event: EventError, ID: in.ID, Data: ErrorMessage{Message: err.Error()}})
		}
	case EventRequest:
		var req QueryRequest
		if err := json.Unmarshal(in.Data, &req); err != nil {
			h.send(sub, outbound{Event: EventCallback, ID: in.ID, Data: Response{Error: "malformed request"}})
			return
		}
		h.send(sub, outbound{Event: EventCallback, ID: in.ID, Data: h.Request(ctx, req.Type, req.Params)})
	case EventPing:
		h.send(sub, outbound{Event: EventPong, ID: in.ID, Data: Pong{Timestamp: h.now().UTC()}})
	default:
		h.send(sub, outbound{Event: EventError, ID: in.ID, Data: ErrorMessage{Message: "unknown event"}})
	}
}
