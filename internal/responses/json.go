package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"termdex/internal/repositories"
	"termdex/internal/services"
)

// Message writes the flat {"message": ...} error body both endpoints use.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Deleted acknowledges a successful delete.
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// FromError maps a service error onto the response taxonomy: validation
// errors are 400s carrying their own text, missing rows are 404s, anything
// else is a generic 500.
func FromError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		Message(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrNotFound):
		Message(c, http.StatusNotFound, "not found")
	default:
		Message(c, http.StatusInternalServerError, "internal server error")
	}
}
