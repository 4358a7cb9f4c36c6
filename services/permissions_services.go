package services

import (
	"errors"
	"fmt"
	"log"

	"api/database"
	"api/models"
)

// ErrPermissionDenied signals a request that must be rejected explicitly,
// such as a non-superuser using the organization override parameter.
var ErrPermissionDenied = errors.New("permission denied")

// IsSiteAdminUser decides whether the caller may administer course access
// group data for the site's organization.
//
// Platform staff and superusers pass without organization resolution. For
// everyone else the site must resolve to exactly one organization; zero
// matches, several matches and the main site all deny. Resolution failures
// are logged and downgraded, never raised past this boundary.
func IsSiteAdminUser(site *models.Site, user *models.User) bool {
	if user == nil || !user.IsActive {
		return false
	}

	if IsActiveStaffOrSuperuser(user) {
		return true
	}

	org, err := GetCurrentOrganization(site)
	if err != nil {
		log.Printf("Course access groups expect a one:one relationship between organizations and sites: %v", err)
		return false
	}

	return IsActiveAdmin(user.ID, org.ID)
}

// GetRequestedOrganization resolves the organization an admin request acts
// on. Superusers may override the site-derived organization with an explicit
// external UUID; anyone else attempting the override is rejected rather than
// silently ignored. Lookup misses on the override propagate to the caller.
func GetRequestedOrganization(site *models.Site, user *models.User, organizationUUID string) (*models.Organization, error) {
	if organizationUUID != "" {
		if !IsActiveStaffOrSuperuser(user) {
			return nil, fmt.Errorf("%w: not permitted to use the organization_uuid parameter", ErrPermissionDenied)
		}
		return GetOrganizationByUUID(organizationUUID)
	}
	return GetCurrentOrganization(site)
}

// GetCurrentSite resolves the request host to a site record. The port part
// of the host, if any, is ignored.
func GetCurrentSite(host string) (*models.Site, error) {
	for i := range host {
		if host[i] == ':' {
			host = host[:i]
			break
		}
	}

	var site models.Site
	if err := database.DB.Where("domain = ?", host).First(&site).Error; err != nil {
		return nil, err
	}
	return &site, nil
}
