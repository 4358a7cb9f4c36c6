package memberships

import (
	"context"
	"net/http"
	"time"

	"api/database"
	"api/middleware"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

const defaultQueryTimeout = 5 * time.Second

// withTimeout executes a database operation with a timeout context
func withTimeout(dbOperation func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	defer cancel()
	return dbOperation(ctx)
}

// orgGroupIDs returns a subquery of the organization's group ids, used to
// scope every membership and rule lookup to the caller's organization.
func orgGroupIDs(org *models.Organization) interface{} {
	return database.DB.
		Model(&models.CourseAccessGroup{}).
		Select("id").
		Where("organization_id = ?", org.ID)
}

// GetAllMemberships lists the memberships of the requesting organization
// @Summary List memberships
// @Description List group memberships within the caller's organization
// @Tags Memberships
// @Accept json
// @Produce json
// @Success 200 {array} models.Membership
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /memberships [get]
// @Security Bearer
func GetAllMemberships(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var memberships []models.Membership
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("group_id IN (?)", orgGroupIDs(org)).
			Preload("User").
			Preload("Group").
			Find(&memberships).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingMemberships)
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// CreateMembership manually enrolls a user into a group
// @Summary Create a membership
// @Description Enroll a user into a course access group of the caller's organization
// @Tags Memberships
// @Accept json
// @Produce json
// @Param membership body CreateMembershipRequest true "Membership to create"
// @Success 201 {object} models.Membership
// @Failure 400 {object} response.ErrorResponse "Invalid request or user already enrolled"
// @Failure 404 {object} response.ErrorResponse "Group or user not found"
// @Router /memberships [post]
// @Security Bearer
func CreateMembership(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var req CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var group models.CourseAccessGroup
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id = ? AND organization_id = ?", req.GroupID, org.ID).
			First(&group).Error
	})
	if err != nil {
		response.NotFound(c, ErrGroupNotFound)
		return
	}

	var user models.User
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Select("id").
			First(&user, "id = ?", req.UserID).Error
	})
	if err != nil {
		response.NotFound(c, ErrUserNotFound)
		return
	}

	// A learner can belong to at most one group system-wide.
	var alreadyMember bool
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Model(&models.Membership{}).
			Select("COUNT(*) > 0").
			Where("user_id = ?", req.UserID).
			Find(&alreadyMember).Error
	})
	if err == nil && alreadyMember {
		response.Error(c, http.StatusBadRequest, ErrUserAlreadyMember)
		return
	}

	membership := models.Membership{
		UserID:    req.UserID,
		GroupID:   req.GroupID,
		Automatic: false,
	}
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Create(&membership).Error
	})
	if err != nil {
		// The unique constraint also covers the racing-writer case.
		response.Error(c, http.StatusBadRequest, ErrUserAlreadyMember)
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// DeleteMembership removes a membership
// @Summary Delete a membership
// @Description Remove a user's group membership
// @Tags Memberships
// @Accept json
// @Produce json
// @Param membership_id path string true "Membership ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse "Membership not found"
// @Router /memberships/{membership_id} [delete]
// @Security Bearer
func DeleteMembership(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var membership models.Membership
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id = ? AND group_id IN (?)", c.Param("membership_id"), orgGroupIDs(org)).
			First(&membership).Error
	})
	if err != nil {
		response.NotFound(c, ErrMembershipNotFound)
		return
	}

	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Delete(&membership).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteMembership)
		return
	}

	c.Status(http.StatusNoContent)
}
