package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment configuration, loaded once at startup
var (
	// Postgres connection settings
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// Redis connection settings
	RedisAddress  string
	RedisPassword string

	// JWTSecret signs the authentication tokens issued by the host platform
	JWTSecret string

	// MainSiteDomain is the platform's shared primary site. It must never
	// resolve to an organization in multi-tenant deployments.
	MainSiteDomain string

	// OrganizationsApp mirrors the host platform's multi-organization support
	// switch. The course access groups feature cannot run without it.
	OrganizationsApp bool

	// ServerPort is the port the API listens on
	ServerPort string
)

// LoadConfig loads the .env file if present and populates the configuration variables
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "cag")

	RedisAddress = getEnv("REDIS_ADDRESS", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "")
	MainSiteDomain = getEnv("MAIN_SITE_DOMAIN", "")
	OrganizationsApp = getEnvBool("ORGANIZATIONS_APP", true)
	ServerPort = getEnv("SERVER_PORT", "8080")
}

// getEnv returns the environment variable value or a fallback
func getEnv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvBool returns the environment variable parsed as a boolean or a fallback
func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid boolean for %s: %q, using default %v", key, value, fallback)
		return fallback
	}
	return parsed
}
