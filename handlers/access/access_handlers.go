package access

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// CheckAccess is the pluggable access-control hook for the host platform
// @Summary Check course access
// @Description Evaluate whether a user may view a course, combining the platform verdict with the course access group rules. Called by the host platform, not by end users.
// @Tags Access
// @Accept json
// @Produce json
// @Param check body CheckRequest true "Access check to evaluate"
// @Success 200 {object} CheckResponse
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 403 {object} response.ErrorResponse "Caller is not platform staff"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Failure 500 {object} response.ErrorResponse "Configuration error"
// @Router /access/check [post]
// @Security Bearer
func CheckAccess(c *gin.Context) {
	caller, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	// The hook runs with the platform's service credentials.
	if !services.IsActiveStaffOrSuperuser(caller) {
		response.Error(c, http.StatusForbidden, ErrNoPermissionHook)
		return
	}

	site, err := middleware.GetSiteFromRequest(c)
	if err != nil {
		response.Error(c, http.StatusNotFound, middleware.ErrSiteNotFound)
		return
	}

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var user *models.User
	if req.UserID != "" {
		var found models.User
		if err := database.DB.First(&found, "id = ?", req.UserID).Error; err != nil {
			response.NotFound(c, ErrUserNotFound)
			return
		}
		user = &found
	}

	granted, err := services.UserHasAccess(site, user, req.CourseID, *req.DefaultHasAccess)
	if err != nil {
		// Configuration errors must reach the integrator, not default away.
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, CheckResponse{HasAccess: granted})
}
