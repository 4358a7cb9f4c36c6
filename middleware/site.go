package middleware

import (
	"errors"
	"net/http"

	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
)

const siteContextKey = "site"

const ErrSiteNotFound = "Site not found"

// SiteMiddleware resolves the request host to a site record and stores it in
// the request context. Every tenant-scoped route depends on it.
func SiteMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		site, err := services.GetCurrentSite(c.Request.Host)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": ErrSiteNotFound})
			return
		}

		c.Set(siteContextKey, site)
		c.Next()
	}
}

// GetSiteFromRequest returns the site stored by SiteMiddleware
func GetSiteFromRequest(c *gin.Context) (*models.Site, error) {
	value, exists := c.Get(siteContextKey)
	if !exists {
		return nil, errors.New("no site in context")
	}
	site, ok := value.(*models.Site)
	if !ok {
		return nil, errors.New("invalid site in context")
	}
	return site, nil
}
