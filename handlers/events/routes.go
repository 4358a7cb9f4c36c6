package events

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the lifecycle event webhook routes
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	e := r.Group("/events")
	{
		e.POST("/account-activated", AccountActivated)
		e.POST("/register", Register)
	}
}
