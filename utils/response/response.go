package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error payload shape documented in the API schema
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// NotFound sends a standardized not-found response. Cross-organization
// lookups must be indistinguishable from missing records.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// Success sends a standardized success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}
