package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/gopress/internal/models"
)

// handleStoreError maps store errors to HTTP responses: not-found to 404,
// conflicts to 409, everything else to a generic 500 (detail stays in logs).
func handleStoreError(c *gin.Context, err error, entity, operation string) {
	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
		return
	}
	if errors.Is(err, models.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": entity + " already exists"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + operation + " " + entity})
}
