package models

// Course is a read-only overview of a course owned by the host platform,
// identified by its opaque course key.
type Course struct {
	ID          string `gorm:"type:varchar(255);primary_key" json:"id"`
	DisplayName string `gorm:"type:varchar(255);not null;column:display_name" json:"display_name"`
}

// PublicCourse marks a course as public, bypassing all group restrictions.
// At most one marker exists per course.
type PublicCourse struct {
	ID       string  `gorm:"type:uuid;primary_key" json:"id"`
	CourseID string  `gorm:"type:varchar(255);unique;not null;column:course_id" json:"course_id"`
	Course   *Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
}
