package services

import (
	"testing"

	"api/config"
	"api/database"
	"api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSiteConfigBool(t *testing.T) {
	openTestDB(t)
	site := makeSite(t, "acme.example.com")

	assert.False(t, GetSiteConfigBool(site, database.FeatureFlagKey, false))
	assert.True(t, GetSiteConfigBool(site, database.FeatureFlagKey, true), "missing keys use the fallback")

	require.NoError(t, SetSiteConfigBool(site, database.FeatureFlagKey, true))
	assert.True(t, GetSiteConfigBool(site, database.FeatureFlagKey, false))

	require.NoError(t, SetSiteConfigBool(site, database.FeatureFlagKey, false))
	assert.False(t, GetSiteConfigBool(site, database.FeatureFlagKey, true), "upserts overwrite the earlier value")
}

func TestGetSiteConfigBoolInvalidValue(t *testing.T) {
	openTestDB(t)
	site := makeSite(t, "acme.example.com")

	entry := models.SiteConfiguration{SiteID: site.ID, Key: database.FeatureFlagKey, Value: "banana"}
	require.NoError(t, database.DB.Create(&entry).Error)

	assert.True(t, GetSiteConfigBool(site, database.FeatureFlagKey, true))
	assert.False(t, GetSiteConfigBool(site, database.FeatureFlagKey, false))
}

func TestGetSiteConfigBoolNilSite(t *testing.T) {
	openTestDB(t)
	assert.True(t, GetSiteConfigBool(nil, database.FeatureFlagKey, true))
}

func TestIsFeatureEnabled(t *testing.T) {
	openTestDB(t)
	site := makeSite(t, "acme.example.com")

	enabled, err := IsFeatureEnabled(site)
	require.NoError(t, err)
	assert.False(t, enabled)

	enableFeature(t, site)

	enabled, err = IsFeatureEnabled(site)
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestIsFeatureEnabledWithoutOrganizationsApp(t *testing.T) {
	openTestDB(t)
	site := makeSite(t, "acme.example.com")
	enableFeature(t, site)

	config.OrganizationsApp = false

	_, err := IsFeatureEnabled(site)
	require.ErrorIs(t, err, ErrConfiguration)
}
