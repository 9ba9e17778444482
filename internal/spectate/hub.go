// internal/spectate/hub.go
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"go-slingshot/internal/app"
	"go-slingshot/internal/event"
)

const (
	sendBuffer   = 8
	writeTimeout = 2 * time.Second
)

// Message types sent to spectators.
const (
	TypeHello    = "hello"
	TypeSnapshot = "snapshot"
	TypeEvent    = "event"
)

// Message is one frame of the spectator feed.
type Message struct {
	Type      string           `json:"type"`
	ClientID  string           `json:"client_id,omitempty"`
	SessionID string           `json:"session_id,omitempty"`
	Event     event.EventType  `json:"event,omitempty"`
	Level     *event.LevelData `json:"level,omitempty"`
	Snapshot  *app.Snapshot    `json:"snapshot,omitempty"`
}

type client struct {
	id   string
	send chan []byte
}

// Hub fans a session's snapshots out to read-only websocket spectators. Slow spectators
// miss frames instead of stalling the game.
type Hub struct {
	mu        sync.RWMutex
	clients   map[string]*client
	sessionID string
	logger    *slog.Logger
}

// NewHub creates a hub for one session.
func NewHub(sessionID string, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients:   make(map[string]*client),
		sessionID: sessionID,
		logger:    logger,
	}
}

// ServeHTTP upgrades the request and streams messages until the spectator leaves.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to accept", "err", err)
		return
	}
	defer conn.CloseNow()

	c := &client{id: uuid.NewString(), send: make(chan []byte, sendBuffer)}
	ctx = conn.CloseRead(ctx)

	h.mu.RLock()
	hello := Message{Type: TypeHello, ClientID: c.id, SessionID: h.sessionID}
	h.mu.RUnlock()
	if err := wsjson.Write(ctx, conn, hello); err != nil {
		h.logger.ErrorContext(ctx, "failed to greet spectator", "client_id", c.id, "err", err)
		return
	}

	h.add(c)
	defer h.remove(c)
	h.logger.InfoContext(ctx, "spectator joined", "client_id", c.id, "session_id", hello.SessionID)

	for {
		select {
		case <-ctx.Done():
			h.logger.DebugContext(ctx, "spectator left", "client_id", c.id)
			return
		case data := <-c.send:
			if err := writeFrame(ctx, conn, data); err != nil {
				if !errors.Is(err, context.Canceled) {
					h.logger.WarnContext(ctx, "spectator write failed", "client_id", c.id, "err", err)
				}
				return
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c.id)
	h.mu.Unlock()
}

// SetSessionID points the hub at a new session.
func (h *Hub) SetSessionID(id string) {
	h.mu.Lock()
	h.sessionID = id
	h.mu.Unlock()
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish sends a snapshot to every spectator.
func (h *Hub) Publish(snap app.Snapshot) {
	h.broadcast(Message{Type: TypeSnapshot, Snapshot: &snap})
}

// Subscribe forwards level transitions to spectators.
func (h *Hub) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(h, event.LevelStarted, event.LevelCompleted, event.SessionHalted)
}

// OnEvent implements event.Listener.
func (h *Hub) OnEvent(e event.Event) {
	msg := Message{Type: TypeEvent, Event: e.Type}
	if data, ok := e.Data.(event.LevelData); ok {
		msg.Level = &data
	}
	h.broadcast(msg)
}

func (h *Hub) broadcast(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.clients) == 0 {
		return
	}
	msg.SessionID = h.sessionID
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to encode spectator message", "type", msg.Type, "err", err)
		return
	}
	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}
