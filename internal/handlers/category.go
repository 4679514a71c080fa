package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/gopress/internal/logger"
	"github.com/jonesrussell/gopress/internal/models"
)

type CategoryHandler struct {
	categories CategoryStore
	logger     logger.Logger
}

func NewCategoryHandler(categories CategoryStore, log logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		logger:     log,
	}
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list categories",
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetByID handles GET /categories/:id.
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	category, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		handleStoreError(c, err, "category", "get")
		return
	}

	c.JSON(http.StatusOK, category)
}

// Create handles POST /categories. The id is the slug derived from the
// title; colliding titles surface as a conflict, with no disambiguation.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req models.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := req.NewCategory()
	if err := h.categories.Create(c.Request.Context(), category); err != nil {
		handleStoreError(c, err, "category", "create")
		return
	}

	c.JSON(http.StatusCreated, category)
}
