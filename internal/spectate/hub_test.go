package spectate

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shvbsle/skirmish/internal/game"
	"github.com/shvbsle/skirmish/internal/log"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("viewers = %d, want %d", h.Clients(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readSnapshot(t *testing.T, conn *websocket.Conn) game.Snapshot {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var snap game.Snapshot
	if err := conn.ReadJSON(&snap); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	return snap
}

func TestHubBroadcastsSnapshots(t *testing.T) {
	hub := NewHub(log.Discard())
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	waitForClients(t, hub, 2)

	hub.Publish(game.Snapshot{Frame: 7, Phase: "playing", Score: 3})

	for _, conn := range []*websocket.Conn{a, b} {
		snap := readSnapshot(t, conn)
		if snap.Frame != 7 || snap.Score != 3 || snap.Phase != "playing" {
			t.Errorf("got %+v", snap)
		}
	}
}

func TestHubSendsLatestFrameOnConnect(t *testing.T) {
	hub := NewHub(log.Discard())
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	hub.Publish(game.Snapshot{Frame: 1})
	hub.Publish(game.Snapshot{Frame: 2, Phase: "game_over", FinalScore: 9})

	conn := dial(t, srv)
	snap := readSnapshot(t, conn)
	if snap.Frame != 2 || snap.FinalScore != 9 {
		t.Errorf("late viewer got %+v, want frame 2", snap)
	}
}

func TestHubDropsDisconnectedViewers(t *testing.T) {
	hub := NewHub(log.Discard())
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)

	// Publishing with nobody listening is a no-op.
	hub.Publish(game.Snapshot{Frame: 3})
}

func TestHubPublishDoesNotBlockOnSlowViewer(t *testing.T) {
	hub := NewHub(log.Discard())
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	dial(t, srv) // never reads
	waitForClients(t, hub, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10*sendBuffer; i++ {
			hub.Publish(game.Snapshot{Frame: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a viewer that is not reading")
	}
}

func TestHubLatestSnapshotEndpoint(t *testing.T) {
	hub := NewHub(log.Discard())
	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("before any frame: status = %d, want 204", resp.StatusCode)
	}

	hub.Publish(game.Snapshot{Frame: 12, Score: 4})

	resp, err = http.Get(srv.URL + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var snap game.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.Frame != 12 || snap.Score != 4 {
		t.Errorf("got %+v", snap)
	}

	resp, err = http.Post(srv.URL+"/snapshot", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", resp.StatusCode)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	hub := NewHub(log.Discard())
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- hub.serve(ctx, ln) }()

	url := "ws://" + ln.Addr().String() + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	waitForClients(t, hub, 1)

	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Errorf("expected a normal close frame, got %v", err)
	}
}

func TestServeRejectsBadAddress(t *testing.T) {
	hub := NewHub(log.Discard())
	if err := hub.Serve(context.Background(), "not-an-address"); err == nil {
		t.Error("expected a listen error")
	}
}
