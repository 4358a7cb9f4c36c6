package memberships

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to memberships and membership rules
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	m := r.Group("/memberships")
	{
		m.GET("", GetAllMemberships)
		m.POST("", CreateMembership)
		m.DELETE("/:membership_id", DeleteMembership)
	}

	rules := r.Group("/membership-rules")
	{
		rules.GET("", GetAllRules)
		rules.POST("", CreateRule)
		rules.PUT("/:rule_id", UpdateRule)
		rules.DELETE("/:rule_id", DeleteRule)
	}
}
