package courses

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to courses, group-course links
// and public course markers
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	c := r.Group("/courses")
	{
		c.GET("", GetAllCourses)
		c.GET("/:course_id", GetCourse)
	}

	gc := r.Group("/group-courses")
	{
		gc.GET("", GetAllGroupCourses)
		gc.POST("", CreateGroupCourse)
		gc.DELETE("/:link_id", DeleteGroupCourse)
	}

	pc := r.Group("/public-courses")
	{
		pc.GET("", GetAllPublicCourses)
		pc.POST("", CreatePublicCourse)
		pc.DELETE("/:marker_id", DeletePublicCourse)
	}
}
