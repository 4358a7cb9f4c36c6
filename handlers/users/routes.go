package users

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to organization users
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	u := r.Group("/users")
	{
		u.GET("", GetAllUsers)
	}
}
