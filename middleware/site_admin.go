package middleware

import (
	"errors"
	"net/http"

	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

const ErrNotSiteAdmin = "User is not a site admin"

// SiteAdminMiddleware gates the administrative CRUD API: only platform staff,
// superusers and active admins of the site's organization pass. Runs after
// AuthMiddleware and SiteMiddleware.
func SiteAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := GetUserFromRequest(c)
		if err != nil {
			c.Abort()
			return
		}

		site, err := GetSiteFromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": ErrSiteNotFound})
			return
		}

		if !services.IsSiteAdminUser(site, user) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": ErrNotSiteAdmin})
			return
		}

		c.Next()
	}
}

// GetRequestedOrganization resolves the organization the admin request acts
// on, honoring the superuser organization_uuid override. The error response
// is already written when an error is returned.
func GetRequestedOrganization(c *gin.Context) (*models.Organization, error) {
	user, err := GetUserFromRequest(c)
	if err != nil {
		return nil, err
	}

	site, err := GetSiteFromRequest(c)
	if err != nil {
		response.Error(c, http.StatusNotFound, ErrSiteNotFound)
		return nil, err
	}

	org, err := services.GetRequestedOrganization(site, user, c.Query("organization_uuid"))
	if err != nil {
		if errors.Is(err, services.ErrPermissionDenied) {
			response.Error(c, http.StatusForbidden, err.Error())
		} else {
			response.Error(c, http.StatusBadRequest, err.Error())
		}
		return nil, err
	}
	return org, nil
}
