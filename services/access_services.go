package services

import (
	"log"

	"api/database"
	"api/metrics"
	"api/models"
)

// IsActiveStaffOrSuperuser checks if the user is active platform staff or a superuser
func IsActiveStaffOrSuperuser(user *models.User) bool {
	return user != nil && user.IsActive && (user.IsStaff || user.IsSuperuser)
}

// IsCourseWithPublicAccess checks whether the course carries a PublicCourse
// marker, which exempts it from all group restrictions.
func IsCourseWithPublicAccess(courseID string) bool {
	var exists bool
	err := database.DB.
		Model(&models.PublicCourse{}).
		Select("COUNT(*) > 0").
		Where("course_id = ?", courseID).
		Find(&exists).Error
	return err == nil && exists
}

// IsOrganizationStaff checks if the user is an active admin of the
// organization that owns the course. A course linked to more than one
// organization is a data-integrity anomaly: it is logged and denied rather
// than raised, so ambiguous ownership can never leak access.
func IsOrganizationStaff(user *models.User, courseID string) bool {
	if user == nil || !user.IsActive {
		// Deactivation does not clear authentication state upstream, so the
		// activity flag is re-checked here.
		return false
	}

	orgs, err := GetOrganizationsForCourse(courseID)
	if err != nil {
		log.Printf("Failed to resolve organizations for course %s: %v", courseID, err)
		return false
	}

	switch len(orgs) {
	case 0:
		return false
	case 1:
		return IsActiveAdmin(user.ID, orgs[0].ID)
	default:
		log.Printf("Course %s is linked to %d organizations, expected exactly one. Denying staff access.", courseID, len(orgs))
		return false
	}
}

// HasMembershipAccess checks whether one of the user's groups is linked to
// the course.
func HasMembershipAccess(userID string, courseID string) bool {
	var exists bool
	err := database.DB.
		Model(&models.GroupCourse{}).
		Select("COUNT(*) > 0").
		Where("course_id = ? AND group_id IN (?)",
			courseID,
			database.DB.Model(&models.Membership{}).Select("group_id").Where("user_id = ?", userID),
		).
		Find(&exists).Error
	return err == nil && exists
}

// UserHasAccess is the access-control hook the host platform calls for every
// course view. It combines the platform's own verdict with the course access
// group rules and only ever narrows it: the result is never true when
// platformDefault is false.
//
// user is nil for anonymous requests. The only error returned is the
// configuration error from the feature flag check.
func UserHasAccess(site *models.Site, user *models.User, courseID string, platformDefault bool) (bool, error) {
	enabled, err := IsFeatureEnabled(site)
	if err != nil {
		return false, err
	}
	if !enabled {
		// Feature is off: pure pass-through of the platform's verdict.
		return platformDefault, nil
	}

	granted := decideAccess(user, courseID, platformDefault)
	metrics.RecordAccessCheck(granted)
	return granted, nil
}

func decideAccess(user *models.User, courseID string, platformDefault bool) bool {
	if !platformDefault {
		// This layer restricts access, it never grants what the platform denies.
		return false
	}

	if IsCourseWithPublicAccess(courseID) {
		// Public courses are visible to everyone, anonymous users included.
		return true
	}

	if user == nil || !user.IsActive {
		return false
	}

	if IsActiveStaffOrSuperuser(user) {
		return platformDefault
	}

	if IsOrganizationStaff(user, courseID) {
		return platformDefault
	}

	return HasMembershipAccess(user.ID, courseID)
}
