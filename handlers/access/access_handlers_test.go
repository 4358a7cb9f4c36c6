package access

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/config"
	"api/database"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

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

func newTestRouter(caller *models.User, site *models.Site) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Set("user", caller)
		c.Set("site", site)
		c.Next()
	})
	RegisterRoutes(api)
	return r
}

func postCheck(t *testing.T, router *gin.Engine, req CheckRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/access/check", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, r)
	return w
}

func boolPtr(v bool) *bool { return &v }

func setupAccessFixture(t *testing.T) (*models.User, *models.Site, *models.User) {
	t.Helper()

	service := models.User{Username: "service", Email: "service@example.com", IsActive: true, IsStaff: true}
	require.NoError(t, database.DB.Create(&service).Error)

	org := models.Organization{Name: "acme", ShortName: "acme", UUID: uuid.NewString()}
	require.NoError(t, database.DB.Create(&org).Error)

	site := models.Site{Domain: "acme.example.com", Name: "acme"}
	require.NoError(t, database.DB.Create(&site).Error)
	require.NoError(t, database.DB.Model(&org).Association("Sites").Append(&site))

	require.NoError(t, database.DB.Create(&models.Course{ID: "course-v1:Acme+101+2026", DisplayName: "Acme 101"}).Error)
	require.NoError(t, database.DB.Create(&models.OrganizationCourse{CourseID: "course-v1:Acme+101+2026", OrganizationID: org.ID, Active: true}).Error)

	require.NoError(t, services.SetSiteConfigBool(&site, database.FeatureFlagKey, true))

	learner := models.User{Username: "learner", Email: "learner@acme.com", IsActive: true}
	require.NoError(t, database.DB.Create(&learner).Error)
	mapping := models.UserOrganizationMapping{UserID: learner.ID, OrganizationID: org.ID, IsActive: true}
	require.NoError(t, database.DB.Create(&mapping).Error)

	return &service, &site, &learner
}

func TestCheckAccessRequiresStaffCaller(t *testing.T) {
	openTestDB(t)
	_, site, learner := setupAccessFixture(t)

	router := newTestRouter(learner, site)
	w := postCheck(t, router, CheckRequest{CourseID: "course-v1:Acme+101+2026", DefaultHasAccess: boolPtr(true)})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCheckAccessValidation(t *testing.T) {
	openTestDB(t)
	service, site, _ := setupAccessFixture(t)

	// default_has_access is mandatory so a missing verdict can never be
	// mistaken for a denial.
	router := newTestRouter(service, site)
	w := postCheck(t, router, CheckRequest{CourseID: "course-v1:Acme+101+2026"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckAccessAnonymous(t *testing.T) {
	openTestDB(t)
	service, site, _ := setupAccessFixture(t)

	router := newTestRouter(service, site)
	w := postCheck(t, router, CheckRequest{CourseID: "course-v1:Acme+101+2026", DefaultHasAccess: boolPtr(true)})
	require.Equal(t, http.StatusOK, w.Code)

	var resp CheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.HasAccess)
}

func TestCheckAccessMember(t *testing.T) {
	openTestDB(t)
	service, site, learner := setupAccessFixture(t)

	var org models.Organization
	require.NoError(t, database.DB.First(&org, "short_name = ?", "acme").Error)
	group, err := services.CreateGroup(&org, "Employees", "", "")
	require.NoError(t, err)
	require.NoError(t, database.DB.Create(&models.GroupCourse{CourseID: "course-v1:Acme+101+2026", GroupID: group.ID}).Error)
	require.NoError(t, database.DB.Create(&models.Membership{UserID: learner.ID, GroupID: group.ID}).Error)

	router := newTestRouter(service, site)
	w := postCheck(t, router, CheckRequest{UserID: learner.ID, CourseID: "course-v1:Acme+101+2026", DefaultHasAccess: boolPtr(true)})
	require.Equal(t, http.StatusOK, w.Code)

	var resp CheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.HasAccess)

	// The platform's denial always stands.
	w = postCheck(t, router, CheckRequest{UserID: learner.ID, CourseID: "course-v1:Acme+101+2026", DefaultHasAccess: boolPtr(false)})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.HasAccess)
}

func TestCheckAccessUnknownUser(t *testing.T) {
	openTestDB(t)
	service, site, _ := setupAccessFixture(t)

	router := newTestRouter(service, site)
	w := postCheck(t, router, CheckRequest{UserID: uuid.NewString(), CourseID: "course-v1:Acme+101+2026", DefaultHasAccess: boolPtr(true)})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
