package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// RabbitMQ
	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string

	// AWS S3 (MinIO compatible)
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3BucketName       string
	S3UseSSL           string

	// Analytics cache
	AnalyticsCacheTTLSeconds int
	ProviderTimeoutSeconds   int

	// Google Analytics (page analytics)
	GA4AccessToken         string
	GA4MainPropertyID      string
	GA4FunnelPropertyID    string
	GA4CheckoutPropertyID  string

	// Meta Graph API (Instagram + Facebook)
	MetaAccessToken string
	FacebookPageID  string

	// GoHighLevel CRM
	GHLAPIKey     string
	GHLLocationID string

	// Google Search Console
	SearchConsoleToken   string
	SearchConsoleSiteURL string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "marketinghub"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       0,

		RabbitMQHost:     getEnv("RABBITMQ_HOST", "localhost"),
		RabbitMQPort:     getEnv("RABBITMQ_PORT", "5672"),
		RabbitMQUser:     getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPassword: getEnv("RABBITMQ_PASSWORD", "guest"),

		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		S3BucketName:       getEnv("S3_BUCKET_NAME", "marketing-hub-assets"),
		S3UseSSL:           getEnv("S3_USE_SSL", "true"),

		AnalyticsCacheTTLSeconds: getEnvInt("ANALYTICS_CACHE_TTL_SECONDS", 300),
		ProviderTimeoutSeconds:   getEnvInt("PROVIDER_TIMEOUT_SECONDS", 10),

		GA4AccessToken:        getEnv("GA4_ACCESS_TOKEN", ""),
		GA4MainPropertyID:     getEnv("GA4_PROPERTY_ID_MAIN", ""),
		GA4FunnelPropertyID:   getEnv("GA4_PROPERTY_ID_FUNNEL", ""),
		GA4CheckoutPropertyID: getEnv("GA4_PROPERTY_ID_CHECKOUT", ""),

		MetaAccessToken: getEnv("META_ACCESS_TOKEN", ""),
		FacebookPageID:  getEnv("FACEBOOK_PAGE_ID", ""),

		GHLAPIKey:     getEnv("GHL_API_KEY", ""),
		GHLLocationID: getEnv("GHL_LOCATION_ID", ""),

		SearchConsoleToken:   getEnv("SEARCH_CONSOLE_TOKEN", ""),
		SearchConsoleSiteURL: getEnv("SEARCH_CONSOLE_SITE_URL", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
