package users

import (
	"net/http"

	"api/middleware"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetAllUsers lists the learners of the requesting organization
// @Summary List organization learners
// @Description List the users actively mapped to the caller's organization. Site admins are excluded.
// @Tags Users
// @Accept json
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users [get]
// @Security Bearer
func GetAllUsers(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	learners, err := services.GetUsersOfOrganization(org.ID, true)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingUsers)
		return
	}

	payload := make([]UserResponse, 0, len(learners))
	for _, u := range learners {
		payload = append(payload, UserResponse{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			IsActive: u.IsActive,
		})
	}

	c.JSON(http.StatusOK, payload)
}
