package groups

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to course access groups
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	groups := r.Group("/course-access-groups")
	{
		groups.GET("", GetAllGroups)
		groups.POST("", CreateGroup)
		groups.GET("/:group_id", GetGroup)
		groups.PUT("/:group_id", UpdateGroup)
		groups.DELETE("/:group_id", DeleteGroup)
	}
}
