package memberships

// Constants for error messages
const (
	ErrMembershipNotFound     = "Membership not found"
	ErrRuleNotFound           = "Membership rule not found"
	ErrGroupNotFound          = "Group not found"
	ErrUserNotFound           = "User not found"
	ErrUserAlreadyMember      = "User already belongs to a course access group"
	ErrFetchingMemberships    = "Error while fetching memberships"
	ErrFetchingRules          = "Error while fetching membership rules"
	ErrFailedCreateMembership = "Failed to create membership"
	ErrFailedDeleteMembership = "Failed to delete membership"
	ErrFailedCreateRule       = "Failed to create membership rule"
	ErrFailedUpdateRule       = "Failed to update membership rule"
	ErrFailedDeleteRule       = "Failed to delete membership rule"
)

// CreateMembershipRequest model for manually enrolling a user into a group
type CreateMembershipRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	GroupID string `json:"group_id" binding:"required"`
}

// CreateRuleRequest model for creating a membership rule
type CreateRuleRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Domain  string `json:"domain" binding:"required"`
	GroupID string `json:"group_id" binding:"required"`
}

// UpdateRuleRequest model for updating a membership rule
type UpdateRuleRequest struct {
	Name   string `json:"name" binding:"max=255"`
	Domain string `json:"domain"`
}
