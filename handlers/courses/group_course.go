package courses

import (
	"context"
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetAllGroupCourses lists the group-course links of the requesting organization
// @Summary List group-course links
// @Description List which groups grant access to which courses in the caller's organization
// @Tags Group Courses
// @Accept json
// @Produce json
// @Success 200 {array} models.GroupCourse
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /group-courses [get]
// @Security Bearer
func GetAllGroupCourses(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var links []models.GroupCourse
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("group_id IN (?)", database.DB.
				Model(&models.CourseAccessGroup{}).
				Select("id").
				Where("organization_id = ?", org.ID)).
			Preload("Group").
			Preload("Course").
			Find(&links).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingGroupCourses)
		return
	}

	c.JSON(http.StatusOK, links)
}

// CreateGroupCourse links a group to a course
// @Summary Link a group to a course
// @Description Grant a group's members access to a course of the caller's organization
// @Tags Group Courses
// @Accept json
// @Produce json
// @Param link body CreateGroupCourseRequest true "Link to create"
// @Success 201 {object} models.GroupCourse
// @Failure 400 {object} response.ErrorResponse "Invalid request or duplicate link"
// @Failure 404 {object} response.ErrorResponse "Group or course not found"
// @Router /group-courses [post]
// @Security Bearer
func CreateGroupCourse(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var req CreateGroupCourseRequest
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

	var course models.Course
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id = ? AND id IN (?)", req.CourseID, orgCourseIDs(org)).
			First(&course).Error
	})
	if err != nil {
		response.NotFound(c, ErrCourseNotFound)
		return
	}

	link := models.GroupCourse{CourseID: req.CourseID, GroupID: req.GroupID}
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Create(&link).Error
	})
	if err != nil {
		// Pairs are unique; a second link of the same pair is rejected.
		response.Error(c, http.StatusBadRequest, ErrAlreadyLinked)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// DeleteGroupCourse unlinks a group from a course
// @Summary Delete a group-course link
// @Description Revoke a group's access to a course
// @Tags Group Courses
// @Accept json
// @Produce json
// @Param link_id path string true "Link ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse "Link not found"
// @Router /group-courses/{link_id} [delete]
// @Security Bearer
func DeleteGroupCourse(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var link models.GroupCourse
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id = ? AND group_id IN (?)", c.Param("link_id"), database.DB.
				Model(&models.CourseAccessGroup{}).
				Select("id").
				Where("organization_id = ?", org.ID)).
			First(&link).Error
	})
	if err != nil {
		response.NotFound(c, ErrGroupCourseNotFound)
		return
	}

	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Delete(&link).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteLink)
		return
	}

	c.Status(http.StatusNoContent)
}
