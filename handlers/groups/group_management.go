package groups

import (
	"context"
	"net/http"
	"time"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for database operations
const (
	defaultQueryTimeout = 5 * time.Second
)

// withTimeout executes a database operation with a timeout context
func withTimeout(dbOperation func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	defer cancel()
	return dbOperation(ctx)
}

// getScopedGroup fetches a group by id within the requesting organization.
// Groups of other organizations are indistinguishable from missing ones.
func getScopedGroup(c *gin.Context, org *models.Organization, groupID string) (*models.CourseAccessGroup, bool) {
	var group models.CourseAccessGroup
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id = ? AND organization_id = ?", groupID, org.ID).
			First(&group).Error
	})
	if err != nil {
		response.NotFound(c, ErrGroupNotFound)
		return nil, false
	}
	return &group, true
}

// GetAllGroups retrieves the course access groups of the requesting organization
// @Summary List course access groups
// @Description List the course access groups of the caller's organization
// @Tags Course Access Groups
// @Accept json
// @Produce json
// @Success 200 {array} models.CourseAccessGroup
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /course-access-groups [get]
// @Security Bearer
func GetAllGroups(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var groups []models.CourseAccessGroup
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("organization_id = ?", org.ID).
			Find(&groups).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingGroups)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroup retrieves one course access group
// @Summary Get a course access group
// @Description Get a course access group with its memberships
// @Tags Course Access Groups
// @Accept json
// @Produce json
// @Param group_id path string true "Group ID"
// @Success 200 {object} models.CourseAccessGroup
// @Failure 404 {object} response.ErrorResponse "Group not found"
// @Router /course-access-groups/{group_id} [get]
// @Security Bearer
func GetGroup(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var group models.CourseAccessGroup
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id = ? AND organization_id = ?", c.Param("group_id"), org.ID).
			Preload("Memberships").
			First(&group).Error
	})
	if err != nil {
		response.NotFound(c, ErrGroupNotFound)
		return
	}

	c.JSON(http.StatusOK, group)
}

// CreateGroup creates a course access group in the requesting organization
// @Summary Create a course access group
// @Description Create a course access group owned by the caller's organization
// @Tags Course Access Groups
// @Accept json
// @Produce json
// @Param group body CreateGroupRequest true "Group to create"
// @Success 201 {object} models.CourseAccessGroup
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 401 {object} response.ErrorResponse "Unauthorized access"
// @Router /course-access-groups [post]
// @Security Bearer
func CreateGroup(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	group, err := services.CreateGroup(org, req.Name, req.Description, "")
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateGroup)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// UpdateGroup updates a course access group's name and description
// @Summary Update a course access group
// @Description Update name and description. The owning organization is immutable.
// @Tags Course Access Groups
// @Accept json
// @Produce json
// @Param group_id path string true "Group ID"
// @Param group body UpdateGroupRequest true "Fields to update"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request or organization change attempted"
// @Failure 404 {object} response.ErrorResponse "Group not found"
// @Router /course-access-groups/{group_id} [put]
// @Security Bearer
func UpdateGroup(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	group, ok := getScopedGroup(c, org, c.Param("group_id"))
	if !ok {
		return
	}

	// Editing the organization of an existing group is disallowed by policy.
	if req.OrganizationID != "" && req.OrganizationID != group.OrganizationID {
		response.Error(c, http.StatusBadRequest, ErrOrganizationFixed)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}

	if len(updates) > 0 {
		err = withTimeout(func(ctx context.Context) error {
			return database.DB.WithContext(ctx).Model(group).Updates(updates).Error
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, ErrFailedUpdateGroup)
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// DeleteGroup deletes a course access group and everything attached to it
// @Summary Delete a course access group
// @Description Delete a group. Its memberships, rules and course links are removed with it.
// @Tags Course Access Groups
// @Accept json
// @Produce json
// @Param group_id path string true "Group ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse "Group not found"
// @Failure 500 {object} response.ErrorResponse "Failed to delete group"
// @Router /course-access-groups/{group_id} [delete]
// @Security Bearer
func DeleteGroup(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	group, ok := getScopedGroup(c, org, c.Param("group_id"))
	if !ok {
		return
	}

	tx := database.DB.Begin()
	if err := tx.Where("group_id = ?", group.ID).Delete(&models.Membership{}).Error; err != nil {
		tx.Rollback()
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteGroup)
		return
	}
	if err := tx.Where("group_id = ?", group.ID).Delete(&models.MembershipRule{}).Error; err != nil {
		tx.Rollback()
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteGroup)
		return
	}
	if err := tx.Where("group_id = ?", group.ID).Delete(&models.GroupCourse{}).Error; err != nil {
		tx.Rollback()
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteGroup)
		return
	}
	if err := tx.Delete(group).Error; err != nil {
		tx.Rollback()
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteGroup)
		return
	}
	if err := tx.Commit().Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteGroup)
		return
	}

	c.Status(http.StatusNoContent)
}
