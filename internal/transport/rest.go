package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/hub"
	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
	"go.uber.org/zap"
)

const alertWriteTimeout = 10 * time.Second

var errAlertStoreUnavailable = errors.New("alert store unavailable")

// RESTHandler serves the read API. Every read goes through the hub's request path, so the REST
// and WebSocket answers stay identical.
type RESTHandler struct {
	source   MetricsSource
	requests Requester
	alerts   AlertStore
	logger   *zap.Logger
}

// NewRESTHandler builds the read API. alerts may be nil when persistence is not wired.
func NewRESTHandler(source MetricsSource, requests Requester, alerts AlertStore, logger *zap.Logger) *RESTHandler {
	return &RESTHandler{source: source, requests: requests, alerts: alerts, logger: logger.Named("rest")}
}

// Register mounts the routes on mux.
func (h *RESTHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/metrics/current", h.current)
	mux.HandleFunc("GET /api/metrics/history", h.query(hub.RequestMetricsHistory))
	mux.HandleFunc("GET /api/metrics/processed", h.query(hub.RequestProcessedMetrics))
	mux.HandleFunc("GET /api/metrics/historical", h.query(hub.RequestHistoricalMetrics))
	mux.HandleFunc("GET /api/transactions", h.query(hub.RequestRecentTransactions))
	mux.HandleFunc("GET /api/transactions/historical", h.query(hub.RequestHistoricalTransactions))
	mux.HandleFunc("GET /api/export", h.query(hub.RequestExport))
	mux.HandleFunc("GET /api/analytics", h.query(hub.RequestAnalytics))
	mux.HandleFunc("GET /api/stats", h.query(hub.RequestConnectionStats))
	mux.HandleFunc("GET /api/alerts", h.query(hub.RequestAlerts))
	mux.HandleFunc("POST /api/alerts/{id}/ack", h.acknowledgeAlert)
	mux.HandleFunc("DELETE /api/alerts/{id}", h.deleteAlert)
}

func (h *RESTHandler) current(w http.ResponseWriter, _ *http.Request) {
	sample, ok := h.source.CurrentMetrics()
	if !ok {
		writeJSON(w, http.StatusNotFound, hub.Response{Error: "no metrics yet"})
		return
	}
	writeJSON(w, http.StatusOK, hub.Response{Success: true, Data: sample})
}

func (h *RESTHandler) query(requestType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := parseQuery(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, hub.Response{Error: err.Error()})
			return
		}
		raw, err := json.Marshal(params)
		if err != nil {
			h.logger.Error("encode query params", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, hub.Response{Error: "request failed"})
			return
		}
		resp := h.requests.Request(r.Context(), requestType, raw)
		writeJSON(w, statusOf(resp), resp)
	}
}

func (h *RESTHandler) acknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	err := h.withAlerts(r.Context(), func(ctx context.Context, store AlertStore) error {
		alert, err := store.AlertByID(ctx, r.PathValue("id"))
		if err != nil {
			return err
		}
		alert.Acknowledged = true
		return store.UpdateAlert(ctx, alert)
	})
	h.writeAlertResult(w, r.PathValue("id"), err)
}

func (h *RESTHandler) deleteAlert(w http.ResponseWriter, r *http.Request) {
	err := h.withAlerts(r.Context(), func(ctx context.Context, store AlertStore) error {
		return store.DeleteAlert(ctx, r.PathValue("id"))
	})
	h.writeAlertResult(w, r.PathValue("id"), err)
}

func (h *RESTHandler) withAlerts(ctx context.Context, fn func(context.Context, AlertStore) error) error {
	if h.alerts == nil {
		return errAlertStoreUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, alertWriteTimeout)
	defer cancel()
	return fn(ctx, h.alerts)
}

func (h *RESTHandler) writeAlertResult(w http.ResponseWriter, id string, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, hub.Response{Success: true, Data: map[string]string{"id": id}})
	case errors.Is(err, errAlertStoreUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, hub.Response{Error: hub.ErrPersistenceUnavailable.Error()})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, hub.Response{Error: "alert not found"})
	default:
		h.logger.Error("alert write failed", zap.String("id", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, hub.Response{Error: "request failed"})
	}
}

func parseQuery(r *http.Request) (hub.QueryParams, error) {
	var (
		p   hub.QueryParams
		err error
		q   = r.URL.Query()
	)
	if v := q.Get("limit"); v != "" {
		if p.Limit, err = strconv.Atoi(v); err != nil || p.Limit < 0 {
			return p, errors.New("invalid limit")
		}
	}
	if p.From, err = parseTime(q.Get("from")); err != nil {
		return p, errors.New("invalid from")
	}
	if p.To, err = parseTime(q.Get("to")); err != nil {
		return p, errors.New("invalid to")
	}
	return p, nil
}

// parseTime accepts RFC 3339 or unix seconds.
func parseTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	return time.Parse(time.RFC3339, v)
}

func statusOf(resp hub.Response) int {
	switch {
	case resp.Success:
		return http.StatusOK
	case resp.Error == hub.ErrPersistenceUnavailable.Error():
		return http.StatusServiceUnavailable
	case resp.Error == "invalid params":
		return http.StatusBadRequest
	case resp.Error == "request failed":
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
