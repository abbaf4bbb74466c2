package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUrl             string
	SupabaseUrl       string
	SupabaseKey       string
	SupabaseJWTSecret string
	FrontendURL       string
	LogLevel          string
	// Weeks are computed in this zone so that "Monday midnight" matches the users' calendar
	Timezone *time.Location
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitUploadThreshold int
	// Storage (Supabase S3-compatible endpoint)
	StorageAccessKeyID     string
	StorageSecretAccessKey string
	StorageRegion          string
	EvidenceBucket         string
	EvidenceTTLDays        int
	EvidenceMaxUploadMB    int
	EvidenceMaxDimension   int
	EvidenceJPEGQuality    int
	EvidenceDailyLimit     int
	ClamAVAddress          string
	// Observability
	MetricsEnabled bool
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; production injects the environment directly
	_ = godotenv.Load()

	tzName := getEnv("APP_TIMEZONE", "Europe/Madrid")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tzName, err)
	}

	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		DBUrl: getEnv("DATABASE_URL", ""),
		// Trailing slash would produce ".co//storage" style URLs
		SupabaseUrl:       strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
		SupabaseKey:       getEnv("SUPABASE_KEY", getEnv("SUPABASE_ANON_KEY", "")),
		SupabaseJWTSecret: getEnv("SUPABASE_JWT_SECRET", getEnv("SUPABASE_JWT_KEY", "")),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		LogLevel:          getEnv("LOG_LEVEL", "debug"),
		Timezone:          loc,
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 20),
		// Storage
		StorageAccessKeyID:     getEnv("STORAGE_S3_ACCESS_KEY_ID", ""),
		StorageSecretAccessKey: getEnv("STORAGE_S3_SECRET_ACCESS_KEY", ""),
		StorageRegion:          getEnv("STORAGE_S3_REGION", "eu-central-1"),
		EvidenceBucket:         getEnv("EVIDENCE_BUCKET", "evidence"),
		EvidenceTTLDays:        getEnvInt("EVIDENCE_TTL_DAYS", 7),
		EvidenceMaxUploadMB:    getEnvInt("EVIDENCE_MAX_UPLOAD_MB", 10),
		EvidenceMaxDimension:   getEnvInt("EVIDENCE_MAX_DIMENSION", 1600),
		EvidenceJPEGQuality:    getEnvInt("EVIDENCE_JPEG_QUALITY", 80),
		EvidenceDailyLimit:     getEnvInt("EVIDENCE_DAILY_LIMIT", 20),
		ClamAVAddress:          getEnv("CLAMAV_ADDRESS", ""),
		MetricsEnabled:         getEnvBool("METRICS_ENABLED", true),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	if cfg.StorageAccessKeyID == "" || cfg.SupabaseUrl == "" {
		log.Println("WARNING: storage credentials not configured. Evidence uploads are disabled.")
	}

	return cfg, nil
}

// StorageEndpoint is the S3-compatible endpoint exposed by Supabase Storage.
func (c *Config) StorageEndpoint() string {
	if c.SupabaseUrl == "" {
		return ""
	}
	return c.SupabaseUrl + "/storage/v1/s3"
}

// PublicObjectURL returns the public URL of an object in a public bucket.
func (c *Config) PublicObjectURL(bucket, key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.SupabaseUrl, bucket, key)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
