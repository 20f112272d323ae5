package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	JWTSecret string
	JWTTTL    time.Duration

	// PageSize is the fixed number of posts per list page.
	PageSize int

	// UploadDir is the root of the media content directory.
	UploadDir string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		UploadDir:      getEnv("UPLOAD_DIR", "media"),
	}

	pageSize, err := strconv.Atoi(getEnv("PAGE_SIZE", "13"))
	if err != nil || pageSize < 1 {
		return nil, fmt.Errorf("invalid PAGE_SIZE: %q", getEnv("PAGE_SIZE", "13"))
	}
	cfg.PageSize = pageSize

	cfg.JWTTTL = time.Hour
	if ttlStr := os.Getenv("JWT_TTL_MINUTES"); ttlStr != "" {
		minutes, err := strconv.Atoi(ttlStr)
		if err != nil || minutes < 1 {
			return nil, fmt.Errorf("invalid JWT_TTL_MINUTES: %q", ttlStr)
		}
		cfg.JWTTTL = time.Duration(minutes) * time.Minute
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
