package services

import (
	"fmt"

	"api/database"
	"api/models"
	"api/utils"
)

// maxSlugAttempts bounds the unique-slug search so it cannot loop forever.
const maxSlugAttempts = 100

// GenerateUniqueSlug builds a unique slug like "acme-employees-2" from the
// organization short name and the group name.
func GenerateUniqueSlug(orgShortName string, groupName string) (string, error) {
	for suffix := 0; suffix <= maxSlugAttempts; suffix++ {
		parts := ""
		if orgShortName != "" {
			parts = orgShortName + " "
		}
		parts += groupName
		if suffix > 0 {
			parts = fmt.Sprintf("%s %d", parts, suffix)
		}

		slug := utils.Slugify(parts)

		var exists bool
		err := database.DB.
			Model(&models.CourseAccessGroup{}).
			Select("COUNT(*) > 0").
			Where("slug = ?", slug).
			Find(&exists).Error
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
	}
	return "", fmt.Errorf("unable to generate a unique slug for course access group: %s", groupName)
}

// CreateGroup creates a course access group for the organization, generating
// a unique slug when none is given.
func CreateGroup(org *models.Organization, name string, description string, slug string) (*models.CourseAccessGroup, error) {
	if slug == "" {
		generated, err := GenerateUniqueSlug(org.ShortName, name)
		if err != nil {
			return nil, err
		}
		slug = generated
	}

	group := models.CourseAccessGroup{
		Name:           name,
		Description:    description,
		Slug:           slug,
		OrganizationID: org.ID,
	}
	if err := database.DB.Create(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}
