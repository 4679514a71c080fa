package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/gopress/internal/logger"
	"github.com/jonesrussell/gopress/internal/models"
)

type TagHandler struct {
	tags   TagStore
	logger logger.Logger
}

func NewTagHandler(tags TagStore, log logger.Logger) *TagHandler {
	return &TagHandler{
		tags:   tags,
		logger: log,
	}
}

// List handles GET /articles/tags, returning all tags unpaginated.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list tags",
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tags"})
		return
	}

	c.JSON(http.StatusOK, tags)
}

// Create handles POST /articles/tags. The id is the slug derived from the
// title; a colliding title surfaces as a conflict.
func (h *TagHandler) Create(c *gin.Context) {
	var req models.TagCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag := req.NewTag()
	if err := h.tags.Create(c.Request.Context(), tag); err != nil {
		handleStoreError(c, err, "tag", "create")
		return
	}

	h.logger.Info("Tag created",
		logger.String("tag_id", tag.ID),
	)

	c.JSON(http.StatusCreated, tag)
}
