package services

import (
	"errors"
	"fmt"
	"strings"

	"api/database"
	"api/metrics"
	"api/models"
	"api/utils"

	"gorm.io/gorm"
)

var (
	// ErrInactiveUser is a precondition violation: rule application callers
	// are expected to gate on the activity flag first.
	ErrInactiveUser = errors.New("unable to apply rules for inactive user")

	// ErrNoOrganization means the user has no active organization mapping
	// yet. Account provisioning links users asynchronously, so this is an
	// expected transient state right after activation.
	ErrNoOrganization = errors.New("user is not linked to any organization")
)

// FindRuleForUser returns the membership rule matching the user's email
// domain within the user's active organizations, or nil when no rule
// matches. When several rules match, the oldest rule wins so the outcome is
// deterministic.
func FindRuleForUser(user *models.User) (*models.MembershipRule, error) {
	domain := utils.EmailDomain(user.Email)
	if domain == "" {
		return nil, nil
	}

	var orgIDs []string
	err := database.DB.
		Model(&models.UserOrganizationMapping{}).
		Where("user_id = ? AND is_active = ?", user.ID, true).
		Pluck("organization_id", &orgIDs).Error
	if err != nil {
		return nil, err
	}
	if len(orgIDs) == 0 {
		return nil, ErrNoOrganization
	}

	var rules []models.MembershipRule
	err = database.DB.
		Joins("JOIN course_access_groups ON course_access_groups.id = membership_rules.group_id").
		Where("course_access_groups.organization_id IN ? AND LOWER(membership_rules.domain) = ?", orgIDs, domain).
		Order("membership_rules.created_at ASC, membership_rules.id ASC").
		Limit(1).
		Find(&rules).Error
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}
	return &rules[0], nil
}

// CreateMembershipFromRules applies the automatic-assignment rules for a
// newly activated or registered learner.
//
// The operation is idempotent: an existing membership, manual or automatic,
// is left untouched (first assignment wins), and the unique constraint on
// the user column resolves races between concurrent lifecycle events.
// A user with no matching rule is a normal no-op.
func CreateMembershipFromRules(user *models.User) error {
	if !user.IsActive {
		return fmt.Errorf("%w: %s", ErrInactiveUser, user.Email)
	}

	rule, err := FindRuleForUser(user)
	if err != nil {
		return err
	}
	if rule == nil {
		return nil
	}

	membership := models.Membership{UserID: user.ID}
	result := database.DB.
		Where("user_id = ?", user.ID).
		Attrs(models.Membership{GroupID: rule.GroupID, Automatic: true}).
		FirstOrCreate(&membership)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			// A concurrent lifecycle event created the membership first.
			return nil
		}
		return result.Error
	}

	// RowsAffected is zero when the membership already existed.
	if result.RowsAffected > 0 {
		metrics.RuleApplications.Inc()
	}
	return nil
}

// ClearMemberships removes every membership of the user. Used when a learner
// leaves the platform.
func ClearMemberships(userID string) error {
	return database.DB.Where("user_id = ?", userID).Delete(&models.Membership{}).Error
}

// isUniqueViolation reports whether err comes from the store's uniqueness
// constraint. gorm normalizes the common case; the string checks cover the
// postgres and sqlite drivers' raw errors.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}
