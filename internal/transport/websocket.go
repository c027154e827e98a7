package transport

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 90 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 64 << 10
	sendBufferSize = 256
)

// wsConn is one subscriber socket. Writes happen only on the write pump; Send enqueues.
type wsConn struct {
	ws        *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newWSConn(ws *websocket.Conn) *wsConn {
	return &wsConn{
		ws:   ws,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
	}
}

// Send enqueues msg and reports false when the queue is full or the socket is closing.
func (c *wsConn) Send(msg []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// Close asks the write pump to say goodbye and release the socket.
func (c *wsConn) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

func (c *wsConn) RemoteAddr() string {
	return c.ws.RemoteAddr().String()
}

func (c *wsConn) writePump(logger *zap.Logger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("write frame", zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Debug("write ping", zap.Error(err))
				return
			}
		case <-c.done:
			_ = c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// WebSocketHandler upgrades requests into hub subscribers.
type WebSocketHandler struct {
	hub      Hub
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewWebSocketHandler builds the subscriber endpoint. Origin checks are left to the CORS layer.
func NewWebSocketHandler(h Hub, logger *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger.Named("websocket"),
	}
}

func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("upgrade failed", zap.String("remote", r.RemoteAddr), zap.Error(err))
		return
	}

	conn := newWSConn(ws)
	logger := h.logger.With(zap.String("remote", r.RemoteAddr))
	go conn.writePump(logger)

	sub, err := h.hub.Connect(conn)
	if err != nil {
		logger.Warn("reject subscriber", zap.Error(err))
		_ = conn.Close()
		return
	}
	defer h.hub.Disconnect(sub.ID)

	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx := r.Context()
	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("read frame", zap.String("subscriber", sub.ID), zap.Error(err))
			}
			return
		}
		h.hub.HandleMessage(ctx, sub.ID, raw)
	}
}
