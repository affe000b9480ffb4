package notifier

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/persnickety/venues-ms-go/internal/logger"
	"github.com/persnickety/venues-ms-go/internal/port"
)

const (
	writeWait      = 10 * time.Second
	pingPeriod     = 30 * time.Second
	pongWait       = 60 * time.Second
	sendBufferSize = 256
)

// Event is the envelope broadcast to subscribers of a topic.
type Event struct {
	Topic string `json:"topic"`
	Data  any    `json:"data"`
}

type client struct {
	id   uuid.UUID
	conn *websocket.Conn
	send chan []byte
}

// Hub fans events out to websocket clients subscribed by topic. It is the
// injected replacement for the source's process-global socket.
type Hub struct {
	mu       sync.RWMutex
	topics   map[string]map[*client]bool
	upgrader websocket.Upgrader
}

// compile-time check: *Hub must satisfy port.Notifier
var _ port.Notifier = (*Hub)(nil)

func NewHub() *Hub {
	log.Println("initialising websocket hub...")
	return &Hub{
		topics: make(map[string]map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Publish broadcasts the payload to every subscriber of the topic. Clients
// whose send buffer is full are skipped rather than blocking the caller.
func (h *Hub) Publish(topic string, payload any) {
	data, err := json.Marshal(Event{Topic: topic, Data: payload})
	if err != nil {
		logger.Errorf(context.Background(), "failed to encode event for topic %q: %v", topic, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.topics[topic] {
		select {
		case c.send <- data:
		default:
			// slow consumer, drop the event
		}
	}
}

// ServeWS upgrades the connection and subscribes it to the topic given in the
// "topic" query parameter.
func (h *Hub) ServeWS() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topic := r.URL.Query().Get("topic")
		if topic == "" {
			http.Error(w, "topic is required", http.StatusBadRequest)
			return
		}

		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Errorf(r.Context(), "websocket upgrade failed: %v", err)
			return
		}

		c := &client{id: uuid.New(), conn: conn, send: make(chan []byte, sendBufferSize)}
		h.subscribe(topic, c)

		go c.writePump()
		c.readPump(func() { h.unsubscribe(topic, c) })
	}
}

func (h *Hub) subscribe(topic string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.topics[topic]; !ok {
		h.topics[topic] = make(map[*client]bool)
	}
	h.topics[topic][c] = true
}

func (h *Hub) unsubscribe(topic string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.topics[topic]; ok {
		delete(subs, c)
		if len(subs) == 0 {
			delete(h.topics, topic)
		}
	}
	close(c.send)
}

// readPump discards inbound frames; it exists to service control messages and
// to detect the peer going away.
func (c *client) readPump(onClose func()) {
	defer func() {
		onClose()
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(1024)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteControl(websocket.CloseMessage, []byte{}, time.Now().Add(time.Second))
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				return
			}
		}
	}
}
