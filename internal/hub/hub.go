// Package hub fans live chain data out to WebSocket subscribers grouped in topic rooms.
package hub

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/chainpulse-backend/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Subscriber is one connected client. Its topic set is guarded by the hub.
type Subscriber struct {
	ID       string
	JoinedAt time.Time

	conn   Conn
	topics map[Topic]struct{}
}

// Hub owns subscribers and rooms, runs the per-topic broadcast timers and answers requests.
type Hub struct {
	source      MetricsSource
	persistence Persistence
	metrics     Metrics
	intervals   Intervals
	logger      *zap.Logger
	now         func() time.Time
	newID       func() string
	startedAt   time.Time

	mu          sync.Mutex
	subscribers map[string]*Subscriber
	rooms       map[Topic]map[string]*Subscriber
	closed      bool
	cancel      context.CancelFunc

	wg        sync.WaitGroup
	closeOnce sync.Once

	connections atomic.Uint64
	sent        atomic.Uint64
	dropped     atomic.Uint64
}

// New builds a Hub. persistence may be nil; requests that need it then fail.
func New(source MetricsSource, persistence Persistence, metrics Metrics, intervals Intervals, logger *zap.Logger) *Hub {
	rooms := make(map[Topic]map[string]*Subscriber, len(Topics))
	for _, t := range Topics {
		rooms[t] = make(map[string]*Subscriber)
	}
	return &Hub{
		source:      source,
		persistence: persistence,
		metrics:     metrics,
		intervals:   intervals,
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
		startedAt:   time.Now(),
		subscribers: make(map[string]*Subscriber),
		rooms:       rooms,
	}
}

// Start launches one timer per timed topic and the alert consumer. Close stops them.
func (h *Hub) Start(ctx context.Context, alerts <-chan model.Alert) {
	h.mu.Lock()
	if h.closed || h.cancel != nil {
		h.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	h.cancel = cancel
	h.mu.Unlock()

	for topic, every := range h.intervals.byTopic() {
		h.wg.Add(1)
		go func(topic Topic, every time.Duration) {
			defer h.wg.Done()
			h.runTimer(ctx, topic, every)
		}(topic, every)
	}

	if alerts != nil {
		h.wg.Add(1)
		go func() {
			defer h.wg.Done()
			h.consumeAlerts(ctx, alerts)
		}()
	}
}

func (h *Hub) runTimer(ctx context.Context, topic Topic, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Broadcast(ctx, topic)
		}
	}
}

func (h *Hub) consumeAlerts(ctx context.Context, alerts <-chan model.Alert) {
	for {
		select {
		case <-ctx.Done():
			return
		case a, ok := <-alerts:
			if !ok {
				return
			}
			h.BroadcastAlert(a)
		}
	}
}

// Connect registers conn and sends it the initial snapshot and the connection status.
func (h *Hub) Connect(conn Conn) (*Subscriber, error) {
	sub := &Subscriber{
		ID:       h.newID(),
		JoinedAt: h.now().UTC(),
		conn:     conn,
		topics:   make(map[Topic]struct{}),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, ErrClosed
	}
	h.subscribers[sub.ID] = sub
	count := len(h.subscribers)
	h.mu.Unlock()

	h.connections.Add(1)
	h.metrics.SetSubscribers(count)
	h.logger.Debug("subscriber connected", zap.String("id", sub.ID), zap.String("remote", conn.RemoteAddr()))

	var current any
	if m, ok := h.source.CurrentMetrics(); ok {
		current = m
	}
	h.send(sub, outbound{Event: EventInitialData, Data: InitialData{
		Metrics:      current,
		Transactions: h.source.RecentTransactions(snapshotTransactions),
	}})
	h.send(sub, outbound{Event: EventConnectionStatus, Data: ConnectionStatus{
		Connected:         true,
		SubscriberID:      sub.ID,
		UpstreamConnected: h.source.Connected(),
		Head:              h.source.Head(),
		Timestamp:         h.now().UTC(),
	}})
	return sub, nil
}

// Subscribe adds topic to the subscriber's set, joins its room on first subscription and sends
// a confirmation followed by an immediate snapshot. Repeated calls do not change membership.
func (h *Hub) Subscribe(ctx context.Context, id string, topic Topic) error {
	if !topic.Known() {
		return &SubscriptionError{Kind: "topic", Name: string(topic)}
	}

	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if !ok {
		h.mu.Unlock()
		return ErrUnknownSubscriber
	}
	if _, joined := sub.topics[topic]; !joined {
		sub.topics[topic] = struct{}{}
		h.rooms[topic][id] = sub
	}
	members := len(h.rooms[topic])
	h.mu.Unlock()

	h.metrics.SetRoomMembers(string(topic), members)
	h.send(sub, outbound{Event: EventSubscriptionConfirmed, Data: SubscribeRequest{Type: topic}})
	h.send(sub, h.topicMessage(ctx, topic))
	return nil
}

// Unsubscribe is the inverse of Subscribe and is equally idempotent.
func (h *Hub) Unsubscribe(id string, topic Topic) error {
	if !topic.Known() {
		return &SubscriptionError{Kind: "topic", Name: string(topic)}
	}

	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if !ok {
		h.mu.Unlock()
		return ErrUnknownSubscriber
	}
	delete(sub.topics, topic)
	delete(h.rooms[topic], id)
	members := len(h.rooms[topic])
	h.mu.Unlock()

	h.metrics.SetRoomMembers(string(topic), members)
	h.send(sub, outbound{Event: EventUnsubscriptionConfirmed, Data: SubscribeRequest{Type: topic}})
	return nil
}

// Disconnect removes the subscriber from the registry and every room, then closes its transport.
func (h *Hub) Disconnect(id string) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if !ok {
		h.mu.Unlock()
		return
	}
	delete(h.subscribers, id)
	left := make(map[Topic]int, len(sub.topics))
	for topic := range sub.topics {
		delete(h.rooms[topic], id)
		left[topic] = len(h.rooms[topic])
	}
	count := len(h.subscribers)
	h.mu.Unlock()

	h.metrics.SetSubscribers(count)
	for topic, n := range left {
		h.metrics.SetRoomMembers(string(topic), n)
	}
	if err := sub.conn.Close(); err != nil {
		h.logger.Debug("close subscriber transport", zap.String("id", id), zap.Error(err))
	}
	h.logger.Debug("subscriber disconnected", zap.String("id", id))
}

// Close stops every timer, disconnects all subscribers and clears the registries. Safe to call
// more than once.
func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		h.mu.Lock()
		h.closed = true
		cancel := h.cancel
		h.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		h.wg.Wait()

		h.mu.Lock()
		subs := make([]*Subscriber, 0, len(h.subscribers))
		for _, sub := range h.subscribers {
			subs = append(subs, sub)
		}
		h.subscribers = make(map[string]*Subscriber)
		for _, t := range Topics {
			h.rooms[t] = make(map[string]*Subscriber)
		}
		h.mu.Unlock()

		for _, sub := range subs {
			_ = sub.conn.Close()
		}
		h.metrics.SetSubscribers(0)
		for _, t := range Topics {
			h.metrics.SetRoomMembers(string(t), 0)
		}
		h.logger.Info("hub closed", zap.Int("disconnected", len(subs)))
	})
}

// Broadcast sends the current payload of topic to its room. An empty room costs nothing: no data
// is read and no message is built.
func (h *Hub) Broadcast(ctx context.Context, topic Topic) {
	members := h.members(topic)
	if len(members) == 0 {
		h.metrics.ObserveSkippedBroadcast(string(topic))
		return
	}

	msg, err := json.Marshal(h.topicMessage(ctx, topic))
	if err != nil {
		h.logger.Error("encode broadcast", zap.String("topic", string(topic)), zap.Error(err))
		return
	}
	h.deliver(members, msg, string(topic))
	h.metrics.ObserveBroadcast(string(topic), len(members))
}

// BroadcastAlert sends a to every connection, and as subscription data to the alerts room.
func (h *Hub) BroadcastAlert(a model.Alert) {
	h.mu.Lock()
	all := make([]*Subscriber, 0, len(h.subscribers))
	for _, sub := range h.subscribers {
		all = append(all, sub)
	}
	h.mu.Unlock()

	if len(all) > 0 {
		msg, err := json.Marshal(outbound{Event: EventAlert, Data: a})
		if err != nil {
			h.logger.Error("encode alert", zap.Error(err))
			return
		}
		h.deliver(all, msg, EventAlert)
	}

	room := h.members(TopicAlerts)
	if len(room) == 0 {
		return
	}
	msg, err := json.Marshal(outbound{Event: EventSubscriptionData, Data: SubscriptionData{
		Type:      TopicAlerts,
		Data:      a,
		Timestamp: h.now().UTC(),
	}})
	if err != nil {
		h.logger.Error("encode alert", zap.Error(err))
		return
	}
	h.deliver(room, msg, string(TopicAlerts))
	h.metrics.ObserveBroadcast(string(TopicAlerts), len(room))
}

// RoomSize returns the number of subscribers in topic's room.
func (h *Hub) RoomSize(topic Topic) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[topic])
}

// SubscriberCount returns the number of registered subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// SubscribedTopics returns the sorted topic set of a subscriber.
func (h *Hub) SubscribedTopics(id string) []Topic {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subscribers[id]
	if !ok {
		return nil
	}
	out := make([]Topic, 0, len(sub.topics))
	for t := range sub.topics {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Stats reports registry sizes and delivery counters.
func (h *Hub) Stats() Stats {
	h.mu.Lock()
	rooms := make(map[Topic]int, len(h.rooms))
	for t, members := range h.rooms {
		rooms[t] = len(members)
	}
	subscribers := len(h.subscribers)
	h.mu.Unlock()

	return Stats{
		Subscribers:       subscribers,
		Rooms:             rooms,
		TotalConnections:  h.connections.Load(),
		MessagesSent:      h.sent.Load(),
		MessagesDropped:   h.dropped.Load(),
		UptimeSeconds:     h.now().Sub(h.startedAt).Seconds(),
		UpstreamConnected: h.source.Connected(),
		Head:              h.source.Head(),
		Timestamp:         h.now().UTC(),
	}
}

func (h *Hub) members(topic Topic) []*Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.rooms[topic]
	if len(room) == 0 {
		return nil
	}
	out := make([]*Subscriber, 0, len(room))
	for _, sub := range room {
		out = append(out, sub)
	}
	return out
}

func (h *Hub) send(sub *Subscriber, msg outbound) {
	raw, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("encode message", zap.String("event", msg.Event), zap.Error(err))
		return
	}
	h.deliver([]*Subscriber{sub}, raw, msg.Event)
}

func (h *Hub) deliver(subs []*Subscriber, raw []byte, label string) {
	for _, sub := range subs {
		if sub.conn.Send(raw) {
			h.sent.Add(1)
			continue
		}
		h.dropped.Add(1)
		h.metrics.ObserveDropped(label)
	}
}
