package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 54 * time.Second
	wsSendBuffer = 64
)

// wsFrame is the envelope delivered to websocket clients: the NOTIFY
// channel plus the event payload exactly as published.
type wsFrame struct {
	Channel string          `json:"channel"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans NOTIFY payloads out to websocket clients. It subscribes the
// event source lazily: a Postgres LISTEN exists only while at least one
// client wants the channel.
type Hub struct {
	source EventSource

	mu     sync.Mutex
	subs   map[string]map[*wsClient]bool
	closed bool
}

// NewHub creates a hub over an event source. A nil source is allowed (the
// hub then only serves broadcasts injected directly, as in tests).
func NewHub(source EventSource) *Hub {
	return &Hub{
		source: source,
		subs:   make(map[string]map[*wsClient]bool),
	}
}

// Broadcast delivers one payload to every client subscribed to the channel.
// It is the events.Listener dispatch target. Slow clients are dropped
// rather than allowed to stall the loop.
func (h *Hub) Broadcast(channel string, payload []byte) {
	frame, err := json.Marshal(wsFrame{Channel: channel, Payload: payload})
	if err != nil {
		return
	}

	h.mu.Lock()
	var stale []*wsClient
	for client := range h.subs[channel] {
		select {
		case client.send <- frame:
		default:
			stale = append(stale, client)
		}
	}
	h.mu.Unlock()

	for _, client := range stale {
		h.remove(client)
	}
}

// add registers a client for its channels, issuing LISTENs for channels
// that gain their first subscriber.
func (h *Hub) add(ctx context.Context, client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(client.send)
		return
	}

	for _, ch := range client.channels {
		first := len(h.subs[ch]) == 0
		if h.subs[ch] == nil {
			h.subs[ch] = make(map[*wsClient]bool)
		}
		h.subs[ch][client] = true

		if first && h.source != nil {
			if err := h.source.Subscribe(ctx, ch); err != nil {
				slog.Warn("Failed to subscribe event channel", "channel", ch, "error", err)
			}
		}
	}
}

// remove unregisters a client, dropping LISTENs for channels that lost
// their last subscriber.
func (h *Hub) remove(client *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client.removed {
		return
	}
	client.removed = true
	close(client.send)

	for _, ch := range client.channels {
		delete(h.subs[ch], client)
		if len(h.subs[ch]) == 0 {
			delete(h.subs, ch)
			if h.source != nil {
				if err := h.source.Unsubscribe(context.Background(), ch); err != nil {
					slog.Warn("Failed to unsubscribe event channel", "channel", ch, "error", err)
				}
			}
		}
	}
}

// Close drops every client. Called once at shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true

	seen := make(map[*wsClient]bool)
	for _, clients := range h.subs {
		for client := range clients {
			if !seen[client] {
				seen[client] = true
				client.removed = true
				close(client.send)
			}
		}
	}
	h.subs = make(map[string]map[*wsClient]bool)
}

// wsClient is one websocket connection and its subscriptions.
type wsClient struct {
	conn     *websocket.Conn
	send     chan []byte
	channels []string
	removed  bool
}

// writePump drains the send channel to the socket and keeps the connection
// alive with pings. Exits when the hub closes the send channel.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames (the stream is one-way) and detects
// disconnects. Returns when the socket closes.
func (c *wsClient) readPump(onClose func()) {
	defer onClose()

	c.conn.SetReadLimit(1024)
	_ = c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
