package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.portfolio/internal/content"
	"io.winapps.portfolio/internal/realtime"
)

const defaultPingInterval = 25 * time.Second

type ChangeSubscriber interface {
	Subscribe(collection string) (<-chan realtime.Change, func())
}

// SubscribeHandler streams a collection as Server-Sent Events: a snapshot on
// connect and a fresh snapshot after every change.
type SubscribeHandler struct {
	handlerLogger
	store        *content.Store
	changes      ChangeSubscriber
	pingInterval time.Duration

	closing   chan struct{}
	closeOnce sync.Once
}

func NewSubscribeHandler(store *content.Store, changes ChangeSubscriber, logger *zap.SugaredLogger) *SubscribeHandler {
	return &SubscribeHandler{
		handlerLogger: newHandlerLogger(logger),
		store:         store,
		changes:       changes,
		pingInterval:  defaultPingInterval,
		closing:       make(chan struct{}),
	}
}

// Shutdown ends every open stream. Register it with
// http.Server.RegisterOnShutdown.
func (h *SubscribeHandler) Shutdown() {
	h.closeOnce.Do(func() { close(h.closing) })
}

func (h *SubscribeHandler) Stream(c *gin.Context) {
	collection := c.Param("collection")
	if !content.IsCollection(collection) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection"})
		return
	}

	ctx := c.Request.Context()

	// Subscribe before the first read so no change between the two is lost.
	changes, cancel := h.changes.Subscribe(collection)
	defer cancel()

	snapshot, err := h.store.Snapshot(ctx, collection)
	if err != nil {
		h.logError(c, err, "failed to load collection", "collection", collection)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load " + collection})
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.SSEvent("snapshot", snapshot)
	c.Writer.Flush()

	ping := time.NewTicker(h.pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-h.closing:
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			snapshot, err := h.store.Snapshot(ctx, collection)
			if err != nil {
				h.logWarn(c, err, "failed to refresh collection", "collection", collection)
				continue
			}
			c.SSEvent("snapshot", snapshot)
		case <-ping.C:
			c.SSEvent("ping", time.Now().UTC().Format(time.RFC3339))
		}
		c.Writer.Flush()
	}
}
