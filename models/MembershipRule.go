package models

import "time"

// MembershipRule enrolls learners into a group automatically based on the
// domain of their email address. Several organizations may claim the same
// domain; within one organization a domain should resolve unambiguously.
type MembershipRule struct {
	ID        string             `gorm:"type:uuid;primary_key" json:"id"`
	Name      string             `gorm:"type:varchar(255);not null" json:"name"`
	Domain    string             `gorm:"type:varchar(253);not null;index" json:"domain"`
	GroupID   string             `gorm:"type:uuid;not null;column:group_id" json:"group_id"`
	CreatedAt time.Time          `json:"created_at"`
	Group     *CourseAccessGroup `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
}
