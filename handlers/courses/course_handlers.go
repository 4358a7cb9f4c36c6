package courses

import (
	"context"
	"net/http"
	"time"

	"api/database"
	"api/extensions"
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

// orgCourseIDs returns a subquery of the course ids actively linked to the
// organization.
func orgCourseIDs(org *models.Organization) interface{} {
	return database.DB.
		Model(&models.OrganizationCourse{}).
		Select("course_id").
		Where("organization_id = ? AND active = ?", org.ID, true)
}

// courseResponse builds the course payload with extension fields merged in
func courseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		DisplayName: course.DisplayName,
		Settings:    extensions.MergeFields(course.ID),
	}
}

// GetAllCourses lists the courses of the requesting organization
// @Summary List courses
// @Description List the organization's courses with their course access group settings
// @Tags Courses
// @Accept json
// @Produce json
// @Success 200 {array} CourseResponse
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /courses [get]
// @Security Bearer
func GetAllCourses(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var courseList []models.Course
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id IN (?)", orgCourseIDs(org)).
			Find(&courseList).Error
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchingCourses)
		return
	}

	payload := make([]CourseResponse, 0, len(courseList))
	for i := range courseList {
		payload = append(payload, courseResponse(&courseList[i]))
	}
	c.JSON(http.StatusOK, payload)
}

// GetCourse retrieves one course of the requesting organization
// @Summary Get a course
// @Description Get a course of the caller's organization with its course access group settings
// @Tags Courses
// @Accept json
// @Produce json
// @Param course_id path string true "Course key"
// @Success 200 {object} CourseResponse
// @Failure 404 {object} response.ErrorResponse "Course not found"
// @Router /courses/{course_id} [get]
// @Security Bearer
func GetCourse(c *gin.Context) {
	org, err := middleware.GetRequestedOrganization(c)
	if err != nil {
		return
	}

	var course models.Course
	err = withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id = ? AND id IN (?)", c.Param("course_id"), orgCourseIDs(org)).
			First(&course).Error
	})
	if err != nil {
		response.NotFound(c, ErrCourseNotFound)
		return
	}

	c.JSON(http.StatusOK, courseResponse(&course))
}
