package access

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the access-control hook route
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	a := r.Group("/access")
	{
		a.POST("/check", CheckAccess)
	}
}
