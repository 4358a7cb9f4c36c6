package services

import (
	"testing"
	"time"

	"api/config"
	"api/database"
	"api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB swaps the global connection for an in-memory database, one per
// test so state never leaks between them.
func openTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled in-memory connection would open a second, empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	previous := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = previous
	})

	config.OrganizationsApp = true
}

func makeUser(t *testing.T, username string, email string, active bool) *models.User {
	t.Helper()
	user := models.User{Username: username, Email: email, IsActive: active}
	require.NoError(t, database.DB.Create(&user).Error)
	return &user
}

func makeStaffUser(t *testing.T, username string, email string) *models.User {
	t.Helper()
	user := models.User{Username: username, Email: email, IsActive: true, IsStaff: true}
	require.NoError(t, database.DB.Create(&user).Error)
	return &user
}

func makeOrganization(t *testing.T, shortName string) *models.Organization {
	t.Helper()
	org := models.Organization{
		Name:      shortName,
		ShortName: shortName,
		UUID:      uuid.NewString(),
	}
	require.NoError(t, database.DB.Create(&org).Error)
	return &org
}

func makeSite(t *testing.T, domain string, orgs ...*models.Organization) *models.Site {
	t.Helper()
	site := models.Site{Domain: domain, Name: domain}
	require.NoError(t, database.DB.Create(&site).Error)
	for _, org := range orgs {
		require.NoError(t, database.DB.Model(org).Association("Sites").Append(&site))
	}
	return &site
}

func mapUserToOrg(t *testing.T, user *models.User, org *models.Organization, active bool, admin bool) {
	t.Helper()
	mapping := models.UserOrganizationMapping{
		UserID:         user.ID,
		OrganizationID: org.ID,
		IsActive:       active,
		IsAdmin:        admin,
	}
	require.NoError(t, database.DB.Create(&mapping).Error)
}

func makeCourse(t *testing.T, courseID string, org *models.Organization) {
	t.Helper()
	course := models.Course{ID: courseID, DisplayName: courseID}
	require.NoError(t, database.DB.Create(&course).Error)
	if org != nil {
		link := models.OrganizationCourse{CourseID: courseID, OrganizationID: org.ID, Active: true}
		require.NoError(t, database.DB.Create(&link).Error)
	}
}

func linkCourseToOrg(t *testing.T, org *models.Organization, courseID string) {
	t.Helper()
	link := models.OrganizationCourse{CourseID: courseID, OrganizationID: org.ID, Active: true}
	require.NoError(t, database.DB.Create(&link).Error)
}

func linkCourseToOrgInactive(t *testing.T, org *models.Organization, courseID string) {
	t.Helper()
	link := models.OrganizationCourse{CourseID: courseID, OrganizationID: org.ID, Active: false}
	require.NoError(t, database.DB.Create(&link).Error)
}

func testSave(record interface{}) error {
	return database.DB.Save(record).Error
}

func testJoinGroup(userID string, groupID string) error {
	return database.DB.Create(&models.Membership{UserID: userID, GroupID: groupID}).Error
}

func makeGroup(t *testing.T, org *models.Organization, name string) *models.CourseAccessGroup {
	t.Helper()
	group, err := CreateGroup(org, name, "", "")
	require.NoError(t, err)
	return group
}

func linkGroupCourse(t *testing.T, group *models.CourseAccessGroup, courseID string) {
	t.Helper()
	link := models.GroupCourse{CourseID: courseID, GroupID: group.ID}
	require.NoError(t, database.DB.Create(&link).Error)
}

func makeRule(t *testing.T, group *models.CourseAccessGroup, domain string, createdAt time.Time) *models.MembershipRule {
	t.Helper()
	rule := models.MembershipRule{
		Name:      domain + " learners",
		Domain:    domain,
		GroupID:   group.ID,
		CreatedAt: createdAt,
	}
	require.NoError(t, database.DB.Create(&rule).Error)
	return &rule
}

func makePublicCourse(t *testing.T, courseID string) {
	t.Helper()
	marker := models.PublicCourse{CourseID: courseID}
	require.NoError(t, database.DB.Create(&marker).Error)
}

func enableFeature(t *testing.T, site *models.Site) {
	t.Helper()
	require.NoError(t, SetSiteConfigBool(site, database.FeatureFlagKey, true))
}
