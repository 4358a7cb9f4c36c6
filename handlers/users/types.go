package users

// Constants for error messages
const (
	ErrFetchingUsers = "Error while fetching users"
	ErrUserNotFound  = "User not found"
)

// UserResponse exposes the minimal user information the admin UI needs
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}
