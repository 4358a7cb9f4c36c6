package services

import (
	"errors"
	"fmt"

	"api/config"
	"api/database"
	"api/models"
)

// Sentinel errors of the organization directory. Callers downgrade these to
// access denials; they must never surface as grants.
var (
	ErrOrganizationNotFound  = errors.New("organization not found")
	ErrMultipleOrganizations = errors.New("multiple organizations found")
	ErrMainSiteOrganization  = errors.New("the main site has no organization")
)

// IsActiveAdmin checks whether the user has an active admin mapping onto the
// organization.
func IsActiveAdmin(userID string, organizationID string) bool {
	var exists bool
	err := database.DB.
		Model(&models.UserOrganizationMapping{}).
		Select("COUNT(*) > 0").
		Where("user_id = ? AND organization_id = ? AND is_active = ? AND is_admin = ?", userID, organizationID, true, true).
		Find(&exists).Error
	return err == nil && exists
}

// GetOrganizationsForCourse returns every organization actively linked to the
// course. The access rules expect exactly one; callers decide how to treat
// zero or several.
func GetOrganizationsForCourse(courseID string) ([]models.Organization, error) {
	var orgs []models.Organization
	err := database.DB.
		Joins("JOIN organization_courses ON organization_courses.organization_id = organizations.id").
		Where("organization_courses.course_id = ? AND organization_courses.active = ?", courseID, true).
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetCurrentOrganization resolves the single organization tied to the site.
// The platform's main site never resolves: in multi-tenant deployments it is
// shared and must not accidentally appear to be "the organization".
func GetCurrentOrganization(site *models.Site) (*models.Organization, error) {
	if site == nil {
		return nil, ErrOrganizationNotFound
	}
	if config.MainSiteDomain != "" && site.Domain == config.MainSiteDomain {
		return nil, ErrMainSiteOrganization
	}

	var orgs []models.Organization
	err := database.DB.
		Joins("JOIN organization_sites ON organization_sites.organization_id = organizations.id").
		Where("organization_sites.site_id = ?", site.ID).
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}

	switch len(orgs) {
	case 0:
		return nil, ErrOrganizationNotFound
	case 1:
		return &orgs[0], nil
	default:
		return nil, fmt.Errorf("%w: site %s has %d organizations", ErrMultipleOrganizations, site.Domain, len(orgs))
	}
}

// GetOrganizationByUUID looks up an organization by its external UUID
func GetOrganizationByUUID(externalUUID string) (*models.Organization, error) {
	var org models.Organization
	err := database.DB.Where("external_uuid = ?", externalUUID).First(&org).Error
	if err != nil {
		return nil, ErrOrganizationNotFound
	}
	return &org, nil
}

// GetUsersOfOrganization lists the users actively mapped onto the
// organization. With excludeAdmins the organization staff is filtered out,
// which is what the learner-facing API wants.
func GetUsersOfOrganization(organizationID string, excludeAdmins bool) ([]models.User, error) {
	query := database.DB.
		Joins("JOIN user_organization_mappings ON user_organization_mappings.user_id = users.id").
		Where("user_organization_mappings.organization_id = ? AND user_organization_mappings.is_active = ?", organizationID, true)
	if excludeAdmins {
		query = query.Where("user_organization_mappings.is_admin = ?", false)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
