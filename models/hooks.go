package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDs are generated application-side so records behave the same on every
// supported database.
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (u *User) BeforeCreate(*gorm.DB) error                    { ensureID(&u.ID); return nil }
func (o *Organization) BeforeCreate(*gorm.DB) error            { ensureID(&o.ID); return nil }
func (m *UserOrganizationMapping) BeforeCreate(*gorm.DB) error { ensureID(&m.ID); return nil }
func (o *OrganizationCourse) BeforeCreate(*gorm.DB) error      { ensureID(&o.ID); return nil }
func (s *Site) BeforeCreate(*gorm.DB) error                    { ensureID(&s.ID); return nil }
func (s *SiteConfiguration) BeforeCreate(*gorm.DB) error       { ensureID(&s.ID); return nil }
func (p *PublicCourse) BeforeCreate(*gorm.DB) error            { ensureID(&p.ID); return nil }
func (g *CourseAccessGroup) BeforeCreate(*gorm.DB) error       { ensureID(&g.ID); return nil }
func (m *Membership) BeforeCreate(*gorm.DB) error              { ensureID(&m.ID); return nil }
func (r *MembershipRule) BeforeCreate(*gorm.DB) error          { ensureID(&r.ID); return nil }
func (g *GroupCourse) BeforeCreate(*gorm.DB) error             { ensureID(&g.ID); return nil }
