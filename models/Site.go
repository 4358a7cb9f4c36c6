package models

// Site is the request-routing context of a multi-tenant deployment. Each
// organization site resolves to exactly one organization; the platform's main
// site resolves to none.
type Site struct {
	ID     string `gorm:"type:uuid;primary_key" json:"id"`
	Domain string `gorm:"type:varchar(253);unique;not null" json:"domain"`
	Name   string `gorm:"type:varchar(100);not null" json:"name"`
}

// SiteConfiguration holds per-site key/value settings, among them the
// ENABLE_COURSE_ACCESS_GROUPS feature flag.
type SiteConfiguration struct {
	ID     string `gorm:"type:uuid;primary_key" json:"id"`
	SiteID string `gorm:"type:uuid;not null;uniqueIndex:idx_site_key;column:site_id" json:"site_id"`
	Key    string `gorm:"type:varchar(64);not null;uniqueIndex:idx_site_key" json:"key"`
	Value  string `gorm:"type:varchar(255);not null" json:"value"`
	Site   *Site  `gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE" json:"site,omitempty"`
}
