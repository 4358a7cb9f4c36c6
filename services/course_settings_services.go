package services

import (
	"api/database"
	"api/extensions"
	"api/models"
)

// courseAccessGroupSettings contributes the course access group state of a
// course to its API payload: the public flag and the slugs of the groups the
// course is linked to.
type courseAccessGroupSettings struct{}

// CourseSettingsProviderName is the registered name of this module's provider.
const CourseSettingsProviderName = "course_access_groups"

func (courseAccessGroupSettings) Name() string {
	return CourseSettingsProviderName
}

func (courseAccessGroupSettings) Fields(courseID string) map[string]interface{} {
	var slugs []string
	database.DB.
		Model(&models.CourseAccessGroup{}).
		Joins("JOIN group_courses ON group_courses.group_id = course_access_groups.id").
		Where("group_courses.course_id = ?", courseID).
		Order("course_access_groups.slug ASC").
		Pluck("course_access_groups.slug", &slugs)

	return map[string]interface{}{
		"public":      IsCourseWithPublicAccess(courseID),
		"group_slugs": slugs,
	}
}

// RegisterCourseSettings registers this module's course settings provider.
// Safe to call more than once.
func RegisterCourseSettings() {
	extensions.Register(courseAccessGroupSettings{})
}
