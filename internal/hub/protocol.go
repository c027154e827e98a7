package hub

import (
	"encoding/json"
	"time"
)

// Topic names a room.
type Topic string

const (
	TopicLiveMetrics     Topic = "live_metrics"
	TopicTransactions    Topic = "transactions"
	TopicNetworkHealth   Topic = "network_health"
	TopicAlerts          Topic = "alerts"
	TopicConnectionStats Topic = "connection_stats"
)

// Topics lists every known topic.
var Topics = []Topic{TopicLiveMetrics, TopicTransactions, TopicNetworkHealth, TopicAlerts, TopicConnectionStats}

// Known reports whether t is a known topic.
func (t Topic) Known() bool {
	for _, known := range Topics {
		if t == known {
			return true
		}
	}
	return false
}

// Inbound events.
const (
	EventSubscribe   = "subscribe"
	EventUnsubscribe = "unsubscribe"
	EventRequest     = "request"
	EventPing        = "ping"
)

// Outbound events.
const (
	EventInitialData             = "initial_data"
	EventConnectionStatus        = "connection_status"
	EventSubscriptionConfirmed   = "subscription_confirmed"
	EventUnsubscriptionConfirmed = "unsubscription_confirmed"
	EventSubscriptionData        = "subscription_data"
	EventAlert                   = "alert"
	EventConnectionStats         = "connection_stats"
	EventCallback                = "callback"
	EventPong                    = "pong"
	EventError                   = "error"
)

// Envelope frames every message in both directions. ID correlates a request with its callback.
type Envelope struct {
	Event string          `json:"event"`
	ID    string          `json:"id,omitempty"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outbound struct {
	Event string `json:"event"`
	ID    string `json:"id,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// SubscribeRequest is the payload of subscribe and unsubscribe.
type SubscribeRequest struct {
	Type   Topic           `json:"type"`
	Params json.RawMessage `json:"params,omitempty"`
}

// QueryRequest is the payload of request.
type QueryRequest struct {
	Type   string          `json:"type"`
	Params json.RawMessage `json:"params,omitempty"`
}

// QueryParams are the optional parameters shared by all request types.
type QueryParams struct {
	Limit int       `json:"limit,omitempty"`
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
}

// Response answers a request.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SubscriptionData carries one topic payload.
type SubscriptionData struct {
	Type      Topic     `json:"type"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// InitialData is sent once on connect.
type InitialData struct {
	Metrics      any `json:"metrics"`
	Transactions any `json:"transactions"`
}

// ConnectionStatus acknowledges a new connection.
type ConnectionStatus struct {
	Connected         bool      `json:"connected"`
	SubscriberID      string    `json:"subscriberId"`
	UpstreamConnected bool      `json:"upstreamConnected"`
	Head              uint64    `json:"head"`
	Timestamp         time.Time `json:"timestamp"`
}

// NetworkHealth is the network_health topic payload.
type NetworkHealth struct {
	NetworkHealth     float64 `json:"networkHealth"`
	AverageHealth     float64 `json:"averageHealth"`
	TPS               float64 `json:"tps"`
	BlockTime         float64 `json:"blockTime"`
	GasUtilization    float64 `json:"gasUtilization"`
	UpstreamConnected bool    `json:"upstreamConnected"`
	Head              uint64  `json:"head"`
}

// Stats describes the hub itself.
type Stats struct {
	Subscribers       int           `json:"subscribers"`
	Rooms             map[Topic]int `json:"rooms"`
	TotalConnections  uint64        `json:"totalConnections"`
	MessagesSent      uint64        `json:"messagesSent"`
	MessagesDropped   uint64        `json:"messagesDropped"`
	UptimeSeconds     float64       `json:"uptimeSeconds"`
	UpstreamConnected bool          `json:"upstreamConnected"`
	Head              uint64        `json:"head"`
	Timestamp         time.Time     `json:"timestamp"`
}

// Export bundles the in-memory buffers.
type Export struct {
	Metrics      any       `json:"metrics"`
	Transactions any       `json:"transactions"`
	ExportedAt   time.Time `json:"exportedAt"`
}

// Pong answers ping.
type Pong struct {
	Timestamp time.Time `json:"timestamp"`
}

// ErrorMessage is the payload of error.
type ErrorMessage struct {
	Message string `json:"message"`
}
