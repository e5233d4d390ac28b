package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"matrimony-backend/internal/models"

	"github.com/gorilla/websocket"
)

// dialHub upgrades a client/server pair, registers the server side with
// the hub, and returns both ends.
func dialHub(t *testing.T, hub *WSHub, userID string) (client, server *websocket.Conn) {
	t.Helper()

	serverConns := make(chan *websocket.Conn, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		hub.Register(userID, conn)
		serverConns <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	select {
	case server = <-serverConns:
	case <-time.After(2 * time.Second):
		t.Fatal("connection never registered")
	}
	return client, server
}

func TestWSHubSendToUser(t *testing.T) {
	hub := NewWSHub()
	client, _ := dialHub(t, hub, "u-1")

	if err := hub.SendToUser("u-1", WSMessage{Type: "notification", Data: "hello"}); err != nil {
		t.Fatalf("SendToUser returned error: %v", err)
	}

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("client read failed: %v", err)
	}

	var msg WSMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("bad message payload: %v", err)
	}
	if msg.Type != "notification" || msg.Data != "hello" {
		t.Errorf("received %+v", msg)
	}
}

func TestWSHubSendToOfflineUser(t *testing.T) {
	hub := NewWSHub()
	if err := hub.SendToUser("u-offline", WSMessage{Type: "notification"}); err == nil {
		t.Fatal("expected error for an offline user")
	}
}

func TestWSHubUnregister(t *testing.T) {
	hub := NewWSHub()
	_, server := dialHub(t, hub, "u-1")

	hub.Unregister("u-1", server)
	if hub.IsOnline("u-1") {
		t.Error("user still online after unregister")
	}

	// Unregistering again with the same connection is a no-op.
	hub.Unregister("u-1", server)
}

func TestWSHubReconnectSurvivesStaleUnregister(t *testing.T) {
	hub := NewWSHub()
	_, first := dialHub(t, hub, "u-1")
	client2, _ := dialHub(t, hub, "u-1")

	// The first handler unwinds after its connection was closed by the
	// reconnect; its unregister must not touch the replacement.
	hub.Unregister("u-1", first)

	if !hub.IsOnline("u-1") {
		t.Fatal("reconnected user is offline after the stale unregister")
	}

	if err := hub.SendToUser("u-1", WSMessage{Type: "notification", Data: "still here"}); err != nil {
		t.Fatalf("SendToUser returned error: %v", err)
	}

	client2.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client2.ReadMessage()
	if err != nil {
		t.Fatalf("second connection read failed: %v", err)
	}
	if !strings.Contains(string(data), "still here") {
		t.Errorf("second connection received %s", data)
	}
}

func TestWSHubPushNotification(t *testing.T) {
	hub := NewWSHub()
	client, _ := dialHub(t, hub, "u-1")

	hub.PushNotification(&models.Notification{
		ID:     "n-1",
		UserID: "u-1",
		Type:   models.NotificationMatchInterest,
		Title:  "New Match Interest",
	})

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("client read failed: %v", err)
	}
	if !strings.Contains(string(data), `"n-1"`) {
		t.Errorf("payload missing the notification: %s", data)
	}

	// Offline recipients are skipped without error.
	hub.PushNotification(&models.Notification{ID: "n-2", UserID: "u-offline"})
}
