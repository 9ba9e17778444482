package spectate

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"go-slingshot/internal/app"
	"go-slingshot/internal/config"
	"go-slingshot/internal/defs"
	"go-slingshot/internal/event"
)

func dial(t *testing.T, ctx context.Context, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { conn.CloseNow() })
	return conn
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("Expected %d clients, got %d", n, h.Clients())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubStreamsSnapshots(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	settings := config.DefaultSettings()
	settings.Seed = 1
	g, err := app.NewGameWithLevels(settings, defs.DefaultLevels(), nil)
	if err != nil {
		t.Fatalf("NewGameWithLevels: %v", err)
	}

	hub := NewHub(g.World.SessionID, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, ctx, srv)

	var hello Message
	if err := wsjson.Read(ctx, conn, &hello); err != nil {
		t.Fatalf("Read hello: %v", err)
	}
	if hello.Type != TypeHello || hello.ClientID == "" || hello.SessionID != g.World.SessionID {
		t.Fatalf("Unexpected hello: %+v", hello)
	}
	waitForClients(t, hub, 1)

	hub.Publish(g.Snapshot())

	var got Message
	if err := wsjson.Read(ctx, conn, &got); err != nil {
		t.Fatalf("Read snapshot: %v", err)
	}
	if got.Type != TypeSnapshot || got.Snapshot == nil {
		t.Fatalf("Expected a snapshot, got %+v", got)
	}
	if got.Snapshot.Level != 1 || len(got.Snapshot.Blocks) != 3 {
		t.Errorf("Expected level 1 with 3 blocks, got level %d with %d", got.Snapshot.Level, len(got.Snapshot.Blocks))
	}
}

func TestHubForwardsLevelEvents(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hub := NewHub("session", nil)
	d := event.NewDispatcher()
	hub.Subscribe(d)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, ctx, srv)
	var hello Message
	if err := wsjson.Read(ctx, conn, &hello); err != nil {
		t.Fatalf("Read hello: %v", err)
	}
	waitForClients(t, hub, 1)

	d.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.LevelData{Level: 2, Score: 1500}})

	var got Message
	if err := wsjson.Read(ctx, conn, &got); err != nil {
		t.Fatalf("Read event: %v", err)
	}
	if got.Event != event.LevelCompleted || got.Level == nil || got.Level.Score != 1500 {
		t.Errorf("Unexpected event message: %+v", got)
	}
}

func TestHubDropsClientOnClose(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hub := NewHub("session", nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, ctx, srv)
	var hello Message
	if err := wsjson.Read(ctx, conn, &hello); err != nil {
		t.Fatalf("Read hello: %v", err)
	}
	waitForClients(t, hub, 1)

	conn.Close(websocket.StatusNormalClosure, "bye")
	waitForClients(t, hub, 0)
}

func TestPublishWithoutClients(t *testing.T) {
	hub := NewHub("session", nil)
	hub.Publish(app.Snapshot{})
	if hub.Clients() != 0 {
		t.Errorf("Expected no clients, got %d", hub.Clients())
	}
}
