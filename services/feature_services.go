package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"api/config"
	"api/database"
	"api/metrics"
	"api/models"
)

// ErrConfiguration signals that the feature flag is enabled while the host
// platform's multi-organization support is off. This is fatal and must reach
// the integrator instead of being silently defaulted.
var ErrConfiguration = errors.New("course access groups enabled without organizations support")

const siteConfigCacheDuration = 5 * time.Minute

// GetSiteConfigBool returns a boolean site configuration value, falling back
// to the default when the key is absent or unparsable. Lookups go through
// Redis when available; the database stays the source of truth.
func GetSiteConfigBool(site *models.Site, key string, fallback bool) bool {
	if site == nil {
		return fallback
	}

	cacheKey := fmt.Sprintf("site_config:%s:%s", site.ID, key)
	ctx := context.Background()

	if database.REDIS != nil {
		if cached, err := database.REDIS.Get(ctx, cacheKey).Result(); err == nil {
			if parsed, err := strconv.ParseBool(cached); err == nil {
				metrics.CacheHits.Inc()
				return parsed
			}
		}
		metrics.CacheMisses.Inc()
	}

	var entry models.SiteConfiguration
	err := database.DB.Where("site_id = ? AND key = ?", site.ID, key).First(&entry).Error
	if err != nil {
		return fallback
	}

	parsed, err := strconv.ParseBool(entry.Value)
	if err != nil {
		log.Printf("Invalid boolean site configuration %s for site %s: %q", key, site.Domain, entry.Value)
		return fallback
	}

	if database.REDIS != nil {
		if err := database.REDIS.Set(ctx, cacheKey, entry.Value, siteConfigCacheDuration).Err(); err != nil {
			log.Printf("Failed to cache site configuration %s: %v", cacheKey, err)
		}
	}

	return parsed
}

// SetSiteConfigBool upserts a boolean site configuration value and drops the
// cached entry so the next read sees the change.
func SetSiteConfigBool(site *models.Site, key string, value bool) error {
	entry := models.SiteConfiguration{SiteID: site.ID, Key: key}
	err := database.DB.
		Where("site_id = ? AND key = ?", site.ID, key).
		Assign(map[string]interface{}{"value": strconv.FormatBool(value)}).
		FirstOrCreate(&entry).Error
	if err != nil {
		return err
	}

	if database.REDIS != nil {
		cacheKey := fmt.Sprintf("site_config:%s:%s", site.ID, key)
		if err := database.REDIS.Del(context.Background(), cacheKey).Err(); err != nil {
			log.Printf("Failed to invalidate site configuration cache %s: %v", cacheKey, err)
		}
	}
	return nil
}

// IsFeatureEnabled checks the per-site feature flag. An enabled flag without
// the organizations app is a deployment mistake and returns ErrConfiguration.
func IsFeatureEnabled(site *models.Site) (bool, error) {
	enabled := GetSiteConfigBool(site, database.FeatureFlagKey, false)
	if enabled && !config.OrganizationsApp {
		return false, fmt.Errorf("%w: enable ORGANIZATIONS_APP to fix this error", ErrConfiguration)
	}
	return enabled, nil
}
