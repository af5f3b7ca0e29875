// README: WebSocket chat endpoint; each frame goes through the dialogue engine.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"skybot/internal/modules/dialogue"
	"skybot/internal/modules/history"
	"skybot/internal/observability"
)

type WSHandler struct {
	engine         *dialogue.Service
	history        *history.Store
	allowedOrigins map[string]bool
}

func NewWSHandler(engine *dialogue.Service, hist *history.Store, allowedOrigins []string) *WSHandler {
	origins := make(map[string]bool)
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return &WSHandler{engine: engine, history: hist, allowedOrigins: origins}
}

func (h *WSHandler) checkOrigin(r *http.Request) bool {
	if len(h.allowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true // allow non-browser clients
	}
	return h.allowedOrigins[origin]
}

type wsIncoming struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

type wsFrame struct {
	Type      string             `json:"type"`
	SessionID string             `json:"sessionId,omitempty"`
	Response  *dialogue.Response `json:"response,omitempty"`
	Text      string             `json:"text,omitempty"`
}

func (h *WSHandler) Serve(c *gin.Context) {
	log := observability.LoggerFromContext(c.Request.Context())

	upgrader := websocket.Upgrader{CheckOrigin: h.checkOrigin}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if err := conn.WriteJSON(wsFrame{Type: "connected", SessionID: sessionID}); err != nil {
		log.Warn("websocket write failed", "error", err)
		return
	}

	ctx := c.Request.Context()
	for {
		var incoming wsIncoming
		if err := conn.ReadJSON(&incoming); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket closed unexpectedly", "session_id", sessionID, "error", err)
			}
			return
		}
		if incoming.Message == "" {
			continue
		}

		resp, err := h.engine.Reply(ctx, incoming.Message, incoming.Language)
		if err != nil {
			log.Error("chat reply failed", "session_id", sessionID, "error", err)
			_ = conn.WriteJSON(wsFrame{Type: "error", SessionID: sessionID, Response: dialogue.Apology()})
			continue
		}

		if h.history != nil {
			if err := h.history.Append(ctx, sessionID, incoming.Language, incoming.Message, resp.Text); err != nil {
				log.Warn("chat history not recorded", "session_id", sessionID, "error", err)
			}
		}
		if err := conn.WriteJSON(wsFrame{Type: "reply", SessionID: sessionID, Response: resp}); err != nil {
			log.Warn("websocket write failed", "session_id", sessionID, "error", err)
			return
		}
	}
}
