// README: WebSocket chat endpoint round-trip test.
package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"skybot/internal/http/handlers"
	"skybot/internal/modules/dialogue"
)

func TestWSChat_RoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := dialogue.NewService(&stubSearcher{}, &stubStatus{})
	r := gin.New()
	h := handlers.NewWSHandler(engine, nil, nil)
	r.GET("/ws/chat", h.Serve)

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Fatalf("handshake status = %d", resp.StatusCode)
	}

	var connected struct {
		Type      string `json:"type"`
		SessionID string `json:"sessionId"`
	}
	if err := conn.ReadJSON(&connected); err != nil {
		t.Fatalf("read connected frame: %v", err)
	}
	if connected.Type != "connected" || connected.SessionID == "" {
		t.Fatalf("connected frame = %+v", connected)
	}

	if err := conn.WriteJSON(map[string]string{"message": "hello", "language": "en"}); err != nil {
		t.Fatalf("write message: %v", err)
	}

	var reply struct {
		Type     string             `json:"type"`
		Response *dialogue.Response `json:"response"`
	}
	if err := conn.ReadJSON(&reply); err != nil {
		t.Fatalf("read reply frame: %v", err)
	}
	if reply.Type != "reply" || reply.Response == nil {
		t.Fatalf("reply frame = %+v", reply)
	}
	if reply.Response.Text != "Hello! How can I help you today?" {
		t.Errorf("reply text = %q", reply.Response.Text)
	}
}
