package activity

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Jasrah85/vibrant-art-group/internal/domain"
)

// Hub fans appended commission events out to connected admin timeline
// viewers. A subscriber may watch a single request or, with an empty
// filter, the whole studio feed. Implements commission.EventSink.
type Hub struct {
	mutex sync.RWMutex

	// requestID filter per connection; "" means all requests.
	subscribers map[*websocket.Conn]string
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*websocket.Conn]string),
	}
}

// EventEnvelope is the wire format pushed to subscribers.
type EventEnvelope struct {
	Kind  string                 `json:"kind"`
	Event domain.CommissionEvent `json:"event"`
}

func (h *Hub) Subscribe(conn *websocket.Conn, requestID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.subscribers[conn] = requestID
}

func (h *Hub) Unsubscribe(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.subscribers[conn]; exists {
		_ = conn.Close()
		delete(h.subscribers, conn)
	}
}

// EventAppended pushes one persisted event to every matching subscriber.
// A write failure drops that subscriber; delivery is not guaranteed and the
// timeline endpoint remains the source of truth.
func (h *Hub) EventAppended(e domain.CommissionEvent) {
	h.mutex.RLock()
	var targets []*websocket.Conn
	for conn, filter := range h.subscribers {
		if filter == "" || filter == e.RequestID {
			targets = append(targets, conn)
		}
	}
	h.mutex.RUnlock()

	envelope := EventEnvelope{Kind: "commission_event", Event: e}
	for _, conn := range targets {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(envelope); err != nil {
			h.Unsubscribe(conn)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.subscribers)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.subscribers {
		_ = conn.Close()
		delete(h.subscribers, conn)
	}
}
