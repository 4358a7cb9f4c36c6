package v1

import (
	"api/config"
	"api/handlers/access"
	"api/handlers/courses"
	"api/handlers/events"
	"api/handlers/groups"
	"api/handlers/memberships"
	"api/handlers/users"
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(config.DefaultRateLimitConfig.Rate, config.DefaultRateLimitConfig.Burst)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)

	// The access hook and the lifecycle events are called by the host
	// platform with service credentials; site resolution still applies.
	hook := v1.Group("")
	hookLimiter := middleware.NewRateLimiter(config.AccessCheckRateLimitConfig.Rate, config.AccessCheckRateLimitConfig.Burst)
	hook.Use(middleware.RateLimiterMiddleware(hookLimiter))
	hook.Use(middleware.SiteMiddleware(), middleware.AuthMiddleware())
	access.RegisterRoutes(hook)
	events.RegisterRoutes(hook)

	// The admin CRUD surface is gated by the site admin permission and
	// scoped to the organization resolved for the caller.
	admin := v1.Group("")
	admin.Use(middleware.SiteMiddleware(), middleware.AuthMiddleware(), middleware.SiteAdminMiddleware())
	groups.RegisterRoutes(admin)
	memberships.RegisterRoutes(admin)
	courses.RegisterRoutes(admin)
	users.RegisterRoutes(admin)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
