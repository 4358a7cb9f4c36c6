package models

import "time"

// Membership binds a user to a course access group. The unique index on
// user_id is the invariant: a learner belongs to at most one group
// system-wide, and it is the store-level safety net against two lifecycle
// events racing to enroll the same user.
type Membership struct {
	ID        string             `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string             `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
	GroupID   string             `gorm:"type:uuid;not null;column:group_id" json:"group_id"`
	Automatic bool               `gorm:"not null;default:false" json:"automatic"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	User      *User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Group     *CourseAccessGroup `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
}
