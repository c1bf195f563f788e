package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MaxUploadMB    int
	DatabaseURL    string
	AwsAccessKey   string
	AwsSecretKey   string
	AwsRegion      string
	BucketName     string
	JWTSecret      string
	ArchiveWorkers int
}

// LoadConfig loads the environment variables and returns the config.
// DATABASE_URL and the AWS settings are optional: without them the service
// runs extraction-only and skips archiving.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8000"),
		MaxUploadMB:    getEnvInt("MAX_UPLOAD_MB", 10),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		AwsAccessKey:   getEnv("AWS_ACCESS_KEY", ""),
		AwsSecretKey:   getEnv("AWS_SECRET_KEY", ""),
		AwsRegion:      getEnv("AWS_REGION", "us-east-2"),
		BucketName:     getEnv("BUCKET_NAME", "extracta-uploads"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		ArchiveWorkers: getEnvInt("ARCHIVE_WORKERS", 2),
	}

	return cfg
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}
