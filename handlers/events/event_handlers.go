package events

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// loadEventUser authenticates the event delivery and loads the target user.
// Lifecycle events are delivered with the platform's service credentials.
func loadEventUser(c *gin.Context) (*models.User, bool) {
	caller, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return nil, false
	}
	if !services.IsActiveStaffOrSuperuser(caller) {
		response.Error(c, http.StatusForbidden, ErrNoPermissionEvent)
		return nil, false
	}

	var req LifecycleEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return nil, false
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", req.UserID).Error; err != nil {
		response.NotFound(c, ErrUserNotFound)
		return nil, false
	}
	return &user, true
}

// AccountActivated handles the account-activation lifecycle event
// @Summary Deliver an account-activation event
// @Description Apply the membership rules for a newly activated learner. Safe to deliver more than once.
// @Tags Events
// @Accept json
// @Produce json
// @Param event body LifecycleEventRequest true "Activated user"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 403 {object} response.ErrorResponse "Caller is not platform staff"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Failure 500 {object} response.ErrorResponse "Rule application failed"
// @Router /events/account-activated [post]
// @Security Bearer
func AccountActivated(c *gin.Context) {
	user, ok := loadEventUser(c)
	if !ok {
		return
	}

	if err := services.OnAccountActivated(user); err != nil {
		// Returned errors reach the bus's retry machinery.
		response.Error(c, http.StatusInternalServerError, ErrEventFailed)
		return
	}

	c.Status(http.StatusNoContent)
}

// Register handles the user-registration lifecycle event
// @Summary Deliver a registration event
// @Description Apply the membership rules for a registered learner. Inactive accounts are a no-op.
// @Tags Events
// @Accept json
// @Produce json
// @Param event body LifecycleEventRequest true "Registered user"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 403 {object} response.ErrorResponse "Caller is not platform staff"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Failure 500 {object} response.ErrorResponse "Rule application failed"
// @Router /events/register [post]
// @Security Bearer
func Register(c *gin.Context) {
	user, ok := loadEventUser(c)
	if !ok {
		return
	}

	if err := services.OnRegister(user); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrEventFailed)
		return
	}

	c.Status(http.StatusNoContent)
}
