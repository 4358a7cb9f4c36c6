package access

// Constants for error messages
const (
	ErrUserNotFound     = "User not found"
	ErrCheckFailed      = "Failed to evaluate course access"
	ErrNoPermissionHook = "Only platform staff may call the access hook"
)

// CheckRequest is the payload the host platform sends for every course view.
// UserID is empty for anonymous requests. DefaultHasAccess carries the
// platform's own verdict, which this API can only narrow.
type CheckRequest struct {
	UserID           string `json:"user_id"`
	CourseID         string `json:"course_id" binding:"required"`
	DefaultHasAccess *bool  `json:"default_has_access" binding:"required"`
}

// CheckResponse is the access verdict
type CheckResponse struct {
	HasAccess bool `json:"has_access"`
}
