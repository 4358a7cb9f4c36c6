package models

// Organization is the tenant boundary. It owns groups, rules and, through
// OrganizationCourse, the courses shown on its sites.
type Organization struct {
	ID        string  `gorm:"type:uuid;primary_key" json:"id"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	ShortName string  `gorm:"type:varchar(64);unique;not null;column:short_name" json:"short_name"`
	UUID      string  `gorm:"type:uuid;unique;not null;column:external_uuid" json:"external_uuid"`
	Sites     []*Site `gorm:"many2many:organization_sites;" json:"sites,omitempty"`
}

// UserOrganizationMapping links a user to an organization. A user may map to
// several organizations; the admin flag is scoped per mapping.
type UserOrganizationMapping struct {
	ID             string        `gorm:"type:uuid;primary_key" json:"id"`
	UserID         string        `gorm:"type:uuid;not null;uniqueIndex:idx_user_org;column:user_id" json:"user_id"`
	OrganizationID string        `gorm:"type:uuid;not null;uniqueIndex:idx_user_org;column:organization_id" json:"organization_id"`
	IsActive       bool          `gorm:"not null;column:is_active" json:"is_active"`
	IsAdmin        bool          `gorm:"not null;default:false;column:is_admin" json:"is_admin"`
	User           *User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
}

// OrganizationCourse links a course to its owning organization. The access
// rules assume a strict one-to-one course to organization relationship;
// violations are treated as data-integrity anomalies, not crashes.
type OrganizationCourse struct {
	ID             string        `gorm:"type:uuid;primary_key" json:"id"`
	CourseID       string        `gorm:"type:varchar(255);not null;uniqueIndex:idx_org_course;column:course_id" json:"course_id"`
	OrganizationID string        `gorm:"type:uuid;not null;uniqueIndex:idx_org_course;column:organization_id" json:"organization_id"`
	Active         bool          `gorm:"not null" json:"active"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
}
