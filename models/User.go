package models

// User mirrors the host platform's account record. The API never creates
// users, it only reads the identity fields relevant to access decisions.
type User struct {
	ID          string                     `gorm:"type:uuid;primary_key" json:"id"`
	Username    string                     `gorm:"type:varchar(150);unique;not null" json:"username"`
	Email       string                     `gorm:"type:varchar(254);unique;not null" json:"email"`
	IsActive    bool                       `gorm:"not null;column:is_active" json:"is_active"`
	IsStaff     bool                       `gorm:"not null;default:false;column:is_staff" json:"is_staff"`
	IsSuperuser bool                       `gorm:"not null;default:false;column:is_superuser" json:"is_superuser"`
	Mappings    []*UserOrganizationMapping `gorm:"foreignKey:UserID" json:"-"`
}
