package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.portfolio/internal/content"
)

// CollectionsHandler serves the stored records as plain lists.
type CollectionsHandler struct {
	handlerLogger
	store *content.Store
}

func NewCollectionsHandler(store *content.Store, logger *zap.SugaredLogger) *CollectionsHandler {
	return &CollectionsHandler{handlerLogger: newHandlerLogger(logger), store: store}
}

// List returns a handler for one named collection.
func (h *CollectionsHandler) List(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := h.store.Snapshot(c.Request.Context(), collection)
		if errors.Is(err, content.ErrUnknownCollection) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown collection"})
			return
		}
		if err != nil {
			h.logError(c, err, "failed to load collection", "collection", collection)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load " + collection})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func (h *CollectionsHandler) GetProject(c *gin.Context) {
	id := c.Param("id")
	project, err := h.store.GetProjectByID(c.Request.Context(), id)
	if err != nil {
		h.logError(c, err, "failed to load project", "project_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}
