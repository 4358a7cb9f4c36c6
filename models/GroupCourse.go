package models

// GroupCourse grants a group's members access to a specific course.
// Pairs are unique.
type GroupCourse struct {
	ID       string             `gorm:"type:uuid;primary_key" json:"id"`
	CourseID string             `gorm:"type:varchar(255);not null;uniqueIndex:idx_course_group;column:course_id" json:"course_id"`
	GroupID  string             `gorm:"type:uuid;not null;uniqueIndex:idx_course_group;column:group_id" json:"group_id"`
	Course   *Course            `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
	Group    *CourseAccessGroup `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"group,omitempty"`
}
