package config

import (
	"os"
	"strconv"
	"time"
)

type AWSConfig struct {
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
}

type AppConfig struct {
	Port        string
	Environment string

	JWTSecret   string
	JWTLifetime time.Duration
	AuthAPIKey  string

	BackendURL     string
	BackendTimeout time.Duration

	JobCacheTTL    time.Duration
	SessionTTL     time.Duration
	ResponseTTL    time.Duration
	MaxUploadBytes int64

	AWS AWSConfig
}

func GetAWSConfig() AWSConfig {
	return AWSConfig{
		AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		Region:    getEnv("AWS_REGION", ""),
		Bucket:    getEnv("AWS_S3_BUCKET", ""),
	}
}

func GetAppConfig() AppConfig {
	return AppConfig{
		Port:        getEnv("PORT", "8081"),
		Environment: getEnv("ENVIRONMENT", "development"),

		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		JWTLifetime: time.Duration(getEnvInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,
		AuthAPIKey:  getEnv("AUTH_API_KEY", ""),

		BackendURL:     getEnv("BACKEND_URL", "http://localhost:8000"),
		BackendTimeout: time.Duration(getEnvInt("BACKEND_TIMEOUT_SECONDS", 30)) * time.Second,

		JobCacheTTL:    time.Duration(getEnvInt("JOB_CACHE_TTL_MINUTES", 30)) * time.Minute,
		SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_HOURS", 8)) * time.Hour,
		ResponseTTL:    time.Duration(getEnvInt("RESPONSE_CACHE_TTL_MINUTES", 5)) * time.Minute,
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 10)) << 20,

		AWS: GetAWSConfig(),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
