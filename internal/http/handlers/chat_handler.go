// README: Chat bot handler; one JSON message in, one interpreted reply out.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skybot/internal/modules/dialogue"
	"skybot/internal/modules/history"
	"skybot/internal/observability"
)

type ChatHandler struct {
	engine  *dialogue.Service
	history *history.Store
}

func NewChatHandler(engine *dialogue.Service, hist *history.Store) *ChatHandler {
	return &ChatHandler{engine: engine, history: hist}
}

type chatMessageReq struct {
	Message   string `json:"message"`
	Language  string `json:"language"`
	SessionID string `json:"sessionId"`
}

// Message replies to one chat turn. Anything that goes wrong inside
// the pipeline degrades to the fixed apology; no partial payload is
// ever returned.
func (h *ChatHandler) Message(c *gin.Context) {
	log := observability.LoggerFromContext(c.Request.Context())

	var req chatMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("chat message bind failed", "error", err)
		writeJSON(c, http.StatusInternalServerError, dialogue.Apology())
		return
	}

	resp, err := h.engine.Reply(c.Request.Context(), req.Message, req.Language)
	if err != nil {
		log.Error("chat reply failed", "error", err)
		writeJSON(c, http.StatusInternalServerError, dialogue.Apology())
		return
	}

	if req.SessionID != "" && h.history != nil {
		if err := h.history.Append(c.Request.Context(), req.SessionID, req.Language, req.Message, resp.Text); err != nil {
			log.Warn("chat history not recorded", "session_id", req.SessionID, "error", err)
		}
	}
	writeJSON(c, http.StatusOK, resp)
}
