package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting. It is loaded once in main and handed
// to the components that need it; nothing reads the environment afterwards.
type Config struct {
	MongoURI       string
	DBName         string
	Port           string
	JWTSecret      string
	AccessTokenTTL time.Duration
	LogLevel       string

	// BranchMaxDistance is the service radius in meters for the nearest
	// open branch query.
	BranchMaxDistance float64

	DefaultPage      int64
	DefaultPageLimit int64
	MinPageValue     int64
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	return Config{
		MongoURI:          getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:            getEnvOrDefault("DB_NAME", "restaurant"),
		Port:              getEnvOrDefault("PORT", "8080"),
		JWTSecret:         getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL:    getDurationEnv("ACCESS_TOKEN_TTL", 60, time.Minute),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		BranchMaxDistance: getFloatEnv("BRANCH_MAX_DISTANCE", 10000),
		DefaultPage:       getInt64Env("DEFAULT_PAGE", 1),
		DefaultPageLimit:  getInt64Env("DEFAULT_PAGE_LIMIT", 20),
		MinPageValue:      getInt64Env("MIN_PAGE_VALUE", 1),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
