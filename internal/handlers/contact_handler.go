package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.portfolio/internal/contact"
	models "io.winapps.portfolio/internal/models/contact"
)

type ContactSubmitter interface {
	Submit(ctx context.Context, req models.ContactRequest, clientIP string) (*models.ContactMessage, error)
}

// MessageLister reads back stored contact messages for the admin inbox.
type MessageLister interface {
	Recent(ctx context.Context, limit int) ([]models.ContactMessage, error)
}

const (
	defaultInboxLimit = 50
	maxInboxLimit     = 200
)

type ContactHandler struct {
	handlerLogger
	contact  ContactSubmitter
	messages MessageLister
}

func NewContactHandler(submitter ContactSubmitter, messages MessageLister, logger *zap.SugaredLogger) *ContactHandler {
	return &ContactHandler{handlerLogger: newHandlerLogger(logger), contact: submitter, messages: messages}
}

// Send handles POST /api/contact.
func (h *ContactHandler) Send(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to send message. Please try again."})
		return
	}

	msg, err := h.contact.Submit(c.Request.Context(), req, c.ClientIP())
	if errors.Is(err, contact.ErrInvalidMessage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to send message. Please try again."})
		return
	}
	if err != nil {
		h.logError(c, err, "failed to store contact message")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred. Please try again."})
		return
	}

	logWithContext(h.logger, c, "info", "contact message received", "contact_id", msg.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully!"})
}

// Inbox handles GET /admin/messages?limit=.
func (h *ContactHandler) Inbox(c *gin.Context) {
	limit := defaultInboxLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive number"})
			return
		}
		limit = min(n, maxInboxLimit)
	}

	messages, err := h.messages.Recent(c.Request.Context(), limit)
	if err != nil {
		h.logError(c, err, "failed to load contact messages")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}
