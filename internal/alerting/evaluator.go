// Package alerting raises alerts from live samples and publishes them on a channel.
package alerting

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultBuffer = 64
	// writeQueue bounds alerts waiting for the store; further alerts are published but not stored.
	writeQueue   = 256
	storeTimeout = 5 * time.Second
)

// Evaluator checks each sample against Thresholds, publishes the resulting alerts on Alerts() and
// hands them to a background writer for storage. Neither step blocks the caller: a full channel
// or write queue drops the alert there.
type Evaluator struct {
	thresholds Thresholds
	store      Store
	metrics    Metrics
	logger     *zap.Logger
	now        func() time.Time
	newID      func() string

	mu        sync.Mutex
	out       chan model.Alert
	writes    chan model.Alert
	written   chan struct{}
	closed    bool
	last      map[model.AlertType]time.Time
	connected bool
}

// New builds an Evaluator. store may be nil.
func New(thresholds Thresholds, store Store, metrics Metrics, logger *zap.Logger, buffer int) *Evaluator {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	e := &Evaluator{
		thresholds: thresholds,
		store:      store,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
		out:        make(chan model.Alert, buffer),
		last:       make(map[model.AlertType]time.Time),
		connected:  true,
	}
	if store != nil {
		e.writes = make(chan model.Alert, writeQueue)
		e.written = make(chan struct{})
		go e.runWriter()
	}
	return e
}

// Alerts is closed by Close.
func (e *Evaluator) Alerts() <-chan model.Alert {
	return e.out
}

// ObserveSample raises the alerts the sample qualifies for. It performs no I/O.
func (e *Evaluator) ObserveSample(_ context.Context, s model.MetricsSample) {
	for _, a := range e.evaluate(s) {
		e.raise(a)
	}
}

// ObserveConnectivity raises an alert when the upstream goes from connected to disconnected.
func (e *Evaluator) ObserveConnectivity(_ context.Context, connected bool) {
	e.mu.Lock()
	lost := e.connected && !connected
	e.connected = connected
	e.mu.Unlock()

	if !lost {
		return
	}
	e.raise(model.Alert{
		Type:     model.AlertUpstreamIssue,
		Severity: model.SeverityCritical,
		Message:  "upstream chain endpoint unreachable",
	})
}

// Close stops publishing, closes the alert channel and waits for queued writes to finish.
func (e *Evaluator) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.out)
	if e.writes != nil {
		close(e.writes)
	}
	e.mu.Unlock()

	if e.written != nil {
		<-e.written
	}
}

func (e *Evaluator) evaluate(s model.MetricsSample) []model.Alert {
	var out []model.Alert
	t := e.thresholds

	// zero-valued samples come from failed computations
	if s.NetworkHealth == 0 && s.TPS == 0 && s.BlockTime == 0 {
		return nil
	}

	switch {
	case s.NetworkHealth < t.HealthCritical:
		out = append(out, model.Alert{
			Type:      model.AlertLowHealth,
			Severity:  model.SeverityCritical,
			Message:   fmt.Sprintf("network health %.0f is below %.0f", s.NetworkHealth, t.HealthCritical),
			Value:     s.NetworkHealth,
			Threshold: t.HealthCritical,
		})
	case s.NetworkHealth < t.HealthWarning:
		out = append(out, model.Alert{
			Type:      model.AlertLowHealth,
			Severity:  model.SeverityWarning,
			Message:   fmt.Sprintf("network health %.0f is below %.0f", s.NetworkHealth, t.HealthWarning),
			Value:     s.NetworkHealth,
			Threshold: t.HealthWarning,
		})
	}

	if t.GasPrice > 0 && s.GasPrice > t.GasPrice {
		out = append(out, model.Alert{
			Type:      model.AlertHighGasPrice,
			Severity:  model.SeverityWarning,
			Message:   fmt.Sprintf("gas price %.2f gwei exceeds %.2f gwei", s.GasPrice, t.GasPrice),
			Value:     s.GasPrice,
			Threshold: t.GasPrice,
		})
	}

	if t.BlockTime > 0 && s.BlockTime > t.BlockTime {
		out = append(out, model.Alert{
			Type:      model.AlertSlowBlocks,
			Severity:  model.SeverityInfo,
			Message:   fmt.Sprintf("average block time %.1fs exceeds %.1fs", s.BlockTime, t.BlockTime),
			Value:     s.BlockTime,
			Threshold: t.BlockTime,
		})
	}

	for i := range out {
		out[i].BlockNumber = s.BlockNumber
	}
	return out
}

func (e *Evaluator) raise(a model.Alert) {
	now := e.now()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	if last, ok := e.last[a.Type]; ok && now.Sub(last) < e.thresholds.Cooldown {
		e.mu.Unlock()
		return
	}
	e.last[a.Type] = now
	e.mu.Unlock()

	a.ID = e.newID()
	a.CreatedAt = now.UTC()

	delivered := e.publish(a)
	e.enqueueWrite(a)
	e.metrics.ObserveAlert(string(a.Type), string(a.Severity), delivered)
	if !delivered {
		e.logger.Warn("alert dropped, channel full", zap.String("type", string(a.Type)))
		return
	}
	e.logger.Info("alert raised",
		zap.String("id", a.ID),
		zap.String("type", string(a.Type)),
		zap.String("severity", string(a.Severity)),
		zap.Float64("value", a.Value),
	)
}

func (e *Evaluator) publish(a model.Alert) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	select {
	case e.out <- a:
		return true
	default:
		return false
	}
}

func (e *Evaluator) enqueueWrite(a model.Alert) {
	if e.writes == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	select {
	case e.writes <- a:
	default:
		e.logger.Warn("alert not stored, write queue full", zap.String("id", a.ID), zap.String("type", string(a.Type)))
	}
}

func (e *Evaluator) runWriter() {
	defer close(e.written)

	for a := range e.writes {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		err := e.store.CreateAlert(ctx, a)
		cancel()
		if err != nil {
			e.logger.Error("store alert failed", zap.String("id", a.ID), zap.String("type", string(a.Type)), zap.Error(err))
		}
	}
}
