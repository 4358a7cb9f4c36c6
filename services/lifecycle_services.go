package services

import (
	"errors"
	"log"

	"api/models"
)

// Lifecycle signal names, used for log context and the webhook routes.
const (
	SignalAccountActivated = "USER_ACCOUNT_ACTIVATED"
	SignalRegister         = "REGISTER_USER"
)

// OnAccountActivated applies the membership rules when a learner account is
// activated.
//
// A user not yet linked to an organization is a known provisioning race and
// is swallowed; it self-corrects when the registration event arrives. The
// inactive-user precondition violation is logged but not re-raised on this
// path. Anything else is logged with full context and returned so the
// dispatcher's retry machinery can act on it.
func OnAccountActivated(user *models.User) error {
	err := CreateMembershipFromRules(user)
	if err == nil || errors.Is(err, ErrNoOrganization) {
		return nil
	}

	logLifecycleError(SignalAccountActivated, user, err)
	if errors.Is(err, ErrInactiveUser) {
		return nil
	}
	return err
}

// OnRegister applies the membership rules when a user registers. The event
// fires for inactive accounts too; those are a normal no-op.
func OnRegister(user *models.User) error {
	if !user.IsActive {
		log.Printf("Skipping membership rules on %s for inactive user %s", SignalRegister, user.Email)
		return nil
	}

	err := CreateMembershipFromRules(user)
	if err == nil || errors.Is(err, ErrNoOrganization) {
		return nil
	}

	logLifecycleError(SignalRegister, user, err)
	return err
}

func logLifecycleError(signal string, user *models.User, err error) {
	log.Printf("Error receiving %s signal for user email=%s id=%s is_active=%v: %v",
		signal, user.Email, user.ID, user.IsActive, err)
}
