package events

// Constants for error messages
const (
	ErrUserNotFound      = "User not found"
	ErrNoPermissionEvent = "Only platform staff may deliver lifecycle events"
	ErrEventFailed       = "Failed to process lifecycle event"
)

// LifecycleEventRequest is the payload the host platform's event bus sends
// for account lifecycle events
type LifecycleEventRequest struct {
	UserID string `json:"user_id" binding:"required"`
}
