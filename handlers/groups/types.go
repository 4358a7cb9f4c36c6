package groups

// Constants for error messages
const (
	ErrGroupNotFound     = "Group not found"
	ErrFetchingGroups    = "Error while fetching groups"
	ErrFailedCreateGroup = "Failed to create group"
	ErrFailedUpdateGroup = "Failed to update group"
	ErrFailedDeleteGroup = "Failed to delete group"
	ErrOrganizationFixed = "The organization of a group cannot be changed"
)

// CreateGroupRequest model for creating a course access group
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,max=32"`
	Description string `json:"description" binding:"max=255"`
}

// UpdateGroupRequest model for updating a course access group
type UpdateGroupRequest struct {
	Name           string `json:"name" binding:"max=32"`
	Description    string `json:"description" binding:"max=255"`
	OrganizationID string `json:"organization_id"`
}
