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

// GetAllPublicCourses lists the public course markers of the requesting organization
// @Summary List public courses
// @Description List the courses of the caller's organization that bypass group restrictions
// @Tags Public Courses
// @Accept json
// @Produce json
// @Success 200 {array} models.PublicCourse
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /public-courses [get]
// @Security Bearer
func GetAllPublicCourses(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var markers []models.PublicCourse
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("course_id IN (?)", orgCourseIDs(org)).
			Preload("Course").
			Find(&markers).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingPublicCourses)
		return
	}

	c.JSON(http.StatusOK, markers)
}

// CreatePublicCourse marks a course as public
// @Summary Mark a course as public
// @Description Exempt a course of the caller's organization from all group restrictions
// @Tags Public Courses
// @Accept json
// @Produce json
// @Param marker body CreatePublicCourseRequest true "Course to mark"
// @Success 201 {object} models.PublicCourse
// @Failure 400 {object} response.ErrorResponse "Invalid request or course already public"
// @Failure 404 {object} response.ErrorResponse "Course not found"
// @Router /public-courses [post]
// @Security Bearer
func CreatePublicCourse(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var req CreatePublicCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
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

	marker := models.PublicCourse{CourseID: req.CourseID}
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Create(&marker).Error
	})
	if err != nil {
		// At most one marker per course.
		response.Error(c, http.StatusBadRequest, ErrAlreadyPublic)
		return
	}

	c.JSON(http.StatusCreated, marker)
}

// DeletePublicCourse removes a public course marker
// @Summary Remove a public course marker
// @Description Put a course back under group-based restrictions
// @Tags Public Courses
// @Accept json
// @Produce json
// @Param marker_id path string true "Marker ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse "Marker not found"
// @Router /public-courses/{marker_id} [delete]
// @Security Bearer
func DeletePublicCourse(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var marker models.PublicCourse
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id = ? AND course_id IN (?)", c.Param("marker_id"), orgCourseIDs(org)).
			First(&marker).Error
	})
	if err != nil {
		response.NotFound(c, ErrPublicCourseNotFound)
		return
	}

	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).Delete(&marker).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteMarker)
		return
	}

	c.Status(http.StatusNoContent)
}
