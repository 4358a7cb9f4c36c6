package courses

// Constants for error messages
const (
	ErrCourseNotFound        = "Course not found"
	ErrGroupNotFound         = "Group not found"
	ErrGroupCourseNotFound   = "Group-course link not found"
	ErrPublicCourseNotFound  = "Public course marker not found"
	ErrAlreadyLinked         = "The group is already linked to this course"
	ErrAlreadyPublic         = "The course is already public"
	ErrFetchingCourses       = "Error while fetching courses"
	ErrFetchingGroupCourses  = "Error while fetching group-course links"
	ErrFetchingPublicCourses = "Error while fetching public courses"
	ErrFailedCreateLink      = "Failed to link the group to the course"
	ErrFailedDeleteLink      = "Failed to unlink the group from the course"
	ErrFailedCreateMarker    = "Failed to mark the course as public"
	ErrFailedDeleteMarker    = "Failed to remove the public course marker"
)

// CreateGroupCourseRequest model for linking a group to a course
type CreateGroupCourseRequest struct {
	CourseID string `json:"course_id" binding:"required"`
	GroupID  string `json:"group_id" binding:"required"`
}

// CreatePublicCourseRequest model for marking a course as public
type CreatePublicCourseRequest struct {
	CourseID string `json:"course_id" binding:"required"`
}

// CourseResponse is a course payload with the extension provider fields merged in
type CourseResponse struct {
	ID          string                 `json:"id"`
	DisplayName string                 `json:"display_name"`
	Settings    map[string]interface{} `json:"settings"`
}
