package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// RunEvent is pushed to every stream subscriber when an evaluation run
// completes, so draft-board UIs can refetch rankings.
type RunEvent struct {
	RunID       string    `json:"run_id"`
	PoolID      string    `json:"pool_id"`
	Philosophy  string    `json:"philosophy"`
	Players     int       `json:"players"`
	Failed      int       `json:"failed"`
	CompletedAt time.Time `json:"completed_at"`
}

// Hub fans evaluation-run events out to websocket subscribers. Slow
// subscribers are dropped rather than allowed to stall a broadcast.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]chan RunEvent
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]chan RunEvent)}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func (h *Hub) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	events := make(chan RunEvent, 8)
	h.mu.Lock()
	h.conns[conn] = events
	h.mu.Unlock()
	log.Debug().Int("subscribers", h.Subscribers()).Msg("stream subscriber connected")

	go h.writeLoop(conn, events)

	// Reads are discarded; the socket exists to push run events out.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.drop(conn)
}

func (h *Hub) writeLoop(conn *websocket.Conn, events chan RunEvent) {
	for ev := range events {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(ev); err != nil {
			h.drop(conn)
			return
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	if events, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		close(events)
	}
	h.mu.Unlock()
	conn.Close()
}

// Broadcast delivers an event to every subscriber without blocking on
// any of them.
func (h *Hub) Broadcast(ev RunEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, events := range h.conns {
		select {
		case events <- ev:
		default:
			log.Warn().Msg("dropping slow stream subscriber")
			delete(h.conns, conn)
			close(events)
			conn.Close()
		}
	}
}

// Subscribers reports the current subscriber count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}
