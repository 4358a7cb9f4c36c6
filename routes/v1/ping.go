package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping godoc
// @Summary Ping the API
// @Description Returns a pong message to check that the API is alive
// @Tags Ping
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// RegisterPingRoutes registers routes for the ping API
func RegisterPingRoutes(r *gin.RouterGroup) {
	r.GET("/ping", ping)
}
