package services

import (
	"testing"

	"api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserHasAccessFeatureDisabled(t *testing.T) {
	openTestDB(t)
	org := makeOrganization(t, "acme")
	site := makeSite(t, "acme.example.com", org)
	makeCourse(t, "course-v1:Acme+101+2026", org)

	// Without the flag the verdict of the platform passes through untouched,
	// for anonymous users too.
	granted, err := UserHasAccess(site, nil, "course-v1:Acme+101+2026", true)
	require.NoError(t, err)
	assert.True(t, granted)

	granted, err = UserHasAccess(site, nil, "course-v1:Acme+101+2026", false)
	require.NoError(t, err)
	assert.False(t, granted)
}

func TestUserHasAccessConfigurationError(t *testing.T) {
	openTestDB(t)
	org := makeOrganization(t, "acme")
	site := makeSite(t, "acme.example.com", org)
	enableFeature(t, site)

	config.OrganizationsApp = false

	_, err := UserHasAccess(site, nil, "course-v1:Acme+101+2026", true)
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestUserHasAccessNeverWidens(t *testing.T) {
	openTestDB(t)
	org := makeOrganization(t, "acme")
	site := makeSite(t, "acme.example.com", org)
	enableFeature(t, site)
	makeCourse(t, "course-v1:Acme+101+2026", org)
	makePublicCourse(t, "course-v1:Acme+101+2026")

	admin := makeStaffUser(t, "root", "root@example.com")
	admin.IsSuperuser = true

	// A platform denial stands even for superusers and public courses.
	granted, err := UserHasAccess(site, admin, "course-v1:Acme+101+2026", false)
	require.NoError(t, err)
	assert.False(t, granted)
}

func TestUserHasAccessPublicCourse(t *testing.T) {
	openTestDB(t)
	org := makeOrganization(t, "acme")
	site := makeSite(t, "acme.example.com", org)
	enableFeature(t, site)
	makeCourse(t, "course-v1:Acme+101+2026", org)
	makePublicCourse(t, "course-v1:Acme+101+2026")

	granted, err := UserHasAccess(site, nil, "course-v1:Acme+101+2026", true)
	require.NoError(t, err)
	assert.True(t, granted, "public courses are visible to anonymous users")
}

func TestUserHasAccessAnonymousDenied(t *testing.T) {
	openTestDB(t)
	org := makeOrganization(t, "acme")
	site := makeSite(t, "acme.example.com", org)
	enableFeature(t, site)
	makeCourse(t, "course-v1:Acme+101+2026", org)

	granted, err := UserHasAccess(site, nil, "course-v1:Acme+101+2026", true)
	require.NoError(t, err)
	assert.False(t, granted)
}

func TestUserHasAccessInactiveUserDenied(t *testing.T) {
	openTestDB(t)
	org := makeOrganization(t, "acme")
	site := makeSite(t, "acme.example.com", org)
	enableFeature(t, site)
	makeCourse(t, "course-v1:Acme+101+2026", org)

	// Staff flags do not rescue a deactivated account.
	staff := makeStaffUser(t, "exstaff", "exstaff@example.com")
	staff.IsActive = false
	require.NoError(t, testSave(staff))

	granted, err := UserHasAccess(site, staff, "course-v1:Acme+101+2026", true)
	require.NoError(t, err)
	assert.False(t, granted)
}

func TestUserHasAccessStaffBypass(t *testing.T) {
	openTestDB(t)
	org := makeOrganization(t, "acme")
	site := makeSite(t, "acme.example.com", org)
	enableFeature(t, site)
	makeCourse(t, "course-v1:Acme+101+2026", org)

	staff := makeStaffUser(t, "staff", "staff@example.com")

	granted, err := UserHasAccess(site, staff, "course-v1:Acme+101+2026", true)
	require.NoError(t, err)
	assert.True(t, granted, "platform staff bypass group restrictions")
}

func TestUserHasAccessOrganizationStaff(t *testing.T) {
	openTestDB(t)
	acme := makeOrganization(t, "acme")
	other := makeOrganization(t, "other")
	site := makeSite(t, "acme.example.com", acme)
	enableFeature(t, site)
	makeCourse(t, "course-v1:Acme+101+2026", acme)

	orgAdmin := makeUser(t, "orgadmin", "admin@acme.com", true)
	mapUserToOrg(t, orgAdmin, acme, true, true)

	foreignAdmin := makeUser(t, "foreign", "admin@other.com", true)
	mapUserToOrg(t, foreignAdmin, other, true, true)

	granted, err := UserHasAccess(site, orgAdmin, "course-v1:Acme+101+2026", true)
	require.NoError(t, err)
	assert.True(t, granted, "admins of the owning organization see all its courses")

	granted, err = UserHasAccess(site, foreignAdmin, "course-v1:Acme+101+2026", true)
	require.NoError(t, err)
	assert.False(t, granted, "admin rights never cross the organization boundary")
}

func TestIsOrganizationStaffAmbiguousCourse(t *testing.T) {
	openTestDB(t)
	acme := makeOrganization(t, "acme")
	other := makeOrganization(t, "other")
	makeCourse(t, "course-v1:Shared+101+2026", acme)
	linkCourseToOrg(t, other, "course-v1:Shared+101+2026")

	orgAdmin := makeUser(t, "orgadmin", "admin@acme.com", true)
	mapUserToOrg(t, orgAdmin, acme, true, true)

	// A course linked to two organizations is an integrity anomaly and must
	// deny rather than guess an owner.
	assert.False(t, IsOrganizationStaff(orgAdmin, "course-v1:Shared+101+2026"))
}

func TestUserHasAccessMembership(t *testing.T) {
	openTestDB(t)
	acme := makeOrganization(t, "acme")
	site := makeSite(t, "acme.example.com", acme)
	enableFeature(t, site)
	makeCourse(t, "course-v1:Acme+101+2026", acme)
	makeCourse(t, "course-v1:Acme+201+2026", acme)

	employees := makeGroup(t, acme, "Employees")
	customers := makeGroup(t, acme, "Customers")
	linkGroupCourse(t, employees, "course-v1:Acme+101+2026")
	linkGroupCourse(t, customers, "course-v1:Acme+201+2026")

	learner := makeUser(t, "learner", "learner@acme.com", true)
	mapUserToOrg(t, learner, acme, true, false)
	require.NoError(t, testJoinGroup(learner.ID, employees.ID))

	granted, err := UserHasAccess(site, learner, "course-v1:Acme+101+2026", true)
	require.NoError(t, err)
	assert.True(t, granted)

	granted, err = UserHasAccess(site, learner, "course-v1:Acme+201+2026", true)
	require.NoError(t, err)
	assert.False(t, granted, "membership only opens the courses linked to the member's group")
}

func TestIsActiveStaffOrSuperuser(t *testing.T) {
	openTestDB(t)

	staff := makeStaffUser(t, "staff", "staff@example.com")
	learner := makeUser(t, "learner", "learner@example.com", true)
	inactive := makeStaffUser(t, "gone", "gone@example.com")
	inactive.IsActive = false

	assert.True(t, IsActiveStaffOrSuperuser(staff))
	assert.False(t, IsActiveStaffOrSuperuser(learner))
	assert.False(t, IsActiveStaffOrSuperuser(inactive))
	assert.False(t, IsActiveStaffOrSuperuser(nil))
}
