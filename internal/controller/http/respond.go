package http

import (
	"errors"
	"net/http"

	"marketing-hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto HTTP status codes. Validation
// failures and missing records keep their message; everything else is an
// internal error.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
