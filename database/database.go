package database

import (
	"fmt"
	"log"

	"api/config"
	"api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// FeatureFlagKey is the site configuration key gating the whole feature.
const FeatureFlagKey = "ENABLE_COURSE_ACCESS_GROUPS"

// InitDB initializes the database connection and migrates the models and populates the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// Migrate runs the schema migration for every model owned by the API
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Site{},
		&models.SiteConfiguration{},
		&models.Organization{},
		&models.UserOrganizationMapping{},
		&models.Course{},
		&models.OrganizationCourse{},
		&models.CourseAccessGroup{},
		&models.Membership{},
		&models.MembershipRule{},
		&models.GroupCourse{},
		&models.PublicCourse{},
	)
}

// Populate seeds the main site and a platform superuser on first boot
func Populate() {
	if config.MainSiteDomain != "" {
		var countSites int64
		DB.Model(&models.Site{}).Where("domain = ?", config.MainSiteDomain).Count(&countSites)
		if countSites == 0 {
			site := models.Site{Domain: config.MainSiteDomain, Name: "Main site"}
			DB.Create(&site)
			log.Println("Main site created: ", config.MainSiteDomain)
		}
	}

	var countUsers int64
	DB.Model(&models.User{}).Count(&countUsers)
	if countUsers == 0 {
		admin := models.User{
			Username:    "admin",
			Email:       "admin@admin.com",
			IsActive:    true,
			IsStaff:     true,
			IsSuperuser: true,
		}
		DB.Create(&admin)
		log.Println("Default superuser created")
	}
}
