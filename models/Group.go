package models

// CourseAccessGroup is a named cohort of learners scoped to one organization.
// Which courses its members can see is decided by GroupCourse links.
// The owning organization is immutable after creation; this is enforced by
// the API handlers, not by the schema.
type CourseAccessGroup struct {
	ID             string        `gorm:"type:uuid;primary_key" json:"id"`
	Name           string        `gorm:"type:varchar(32);not null" json:"name"`
	Description    string        `gorm:"type:varchar(255)" json:"description"`
	Slug           string        `gorm:"type:varchar(255);unique;not null" json:"slug"`
	OrganizationID string        `gorm:"type:uuid;not null;column:organization_id" json:"organization_id"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	Memberships    []*Membership `gorm:"foreignKey:GroupID" json:"memberships,omitempty"`
}
