// README: Notification handlers (send, list, simulated email).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skybot/internal/modules/notification"
)

type NotificationHandler struct {
	notifications *notification.Service
}

func NewNotificationHandler(svc *notification.Service) *NotificationHandler {
	return &NotificationHandler{notifications: svc}
}

func (h *NotificationHandler) Send(c *gin.Context) {
	var cmd notification.SendCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	n, err := h.notifications.Send(c.Request.Context(), cmd)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"success":        true,
		"notificationId": n.ID,
		"message":        "Notification sent successfully",
	})
}

func (h *NotificationHandler) List(c *gin.Context) {
	all, err := h.notifications.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"notifications": all})
}

func (h *NotificationHandler) SendEmail(c *gin.Context) {
	var cmd notification.EmailCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	messageID, err := h.notifications.SendEmail(c.Request.Context(), cmd)
	if err == notification.ErrBadRequest {
		writeError(c, http.StatusBadRequest, "Missing required email parameters")
		return
	}
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"success":   true,
		"messageId": messageID,
		"message":   "Email notification sent successfully",
	})
}
