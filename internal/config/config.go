package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/devbhoomi/tourism-api/internal/pkg/storage"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Redis (cleanup retry queue; optional)
	RedisURL string

	// JWT
	JWTSecret    string
	JWTAccessTTL time.Duration

	// CORS
	AllowedOrigins []string

	// Public URLs
	PublicBaseURL string

	// Storage
	StorageDriver string // local | s3
	UploadDir     string
	S3Endpoint    string
	S3Region      string
	S3Bucket      string
	S3AccessKey   string
	S3SecretKey   string
	S3PublicURL   string

	// Uploads
	ImageMaxDimension int

	// Search
	SearchLimitPerTable int

	// Errors
	ExposeErrorDetails bool

	// Metrics
	MetricsEnabled bool

	// Rate limiting
	LoginRatePerMinute  int
	SearchRatePerSecond int

	// Cleanup worker
	CleanupMaxAttempts  int
	CleanupPollInterval time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := getEnv("PORT", "5000")

	return &Config{
		// Server
		Port: port,
		Env:  getEnv("ENV", "development"),

		// Database
		DatabaseURL: databaseURL(),

		// Redis
		RedisURL: getEnv("REDIS_URL", ""),

		// JWT
		JWTSecret:    getEnv("JWT_SECRET", "super-secret-key-change-me"),
		JWTAccessTTL: parseDuration(getEnv("JWT_ACCESS_TTL", "24h"), 24*time.Hour),

		// CORS
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		PublicBaseURL: strings.TrimSuffix(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),

		// Storage
		StorageDriver: getEnv("STORAGE_DRIVER", "local"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		S3Endpoint:    getEnv("S3_ENDPOINT", ""),
		S3Region:      getEnv("S3_REGION", "us-east-1"),
		S3Bucket:      getEnv("S3_BUCKET", "tourism-uploads"),
		S3AccessKey:   getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:   getEnv("S3_SECRET_KEY", ""),
		S3PublicURL:   getEnv("S3_PUBLIC_URL", ""),

		ImageMaxDimension: parseInt(getEnv("IMAGE_MAX_DIMENSION", "2400"), 2400),

		SearchLimitPerTable: parseInt(getEnv("SEARCH_LIMIT_PER_TABLE", "20"), 20),

		ExposeErrorDetails: parseBool(getEnv("EXPOSE_ERROR_DETAILS", "false"), false),

		MetricsEnabled: parseBool(getEnv("METRICS_ENABLED", "true"), true),

		LoginRatePerMinute:  parseInt(getEnv("LOGIN_RATE_PER_MINUTE", "10"), 10),
		SearchRatePerSecond: parseInt(getEnv("SEARCH_RATE_PER_SECOND", "20"), 20),

		CleanupMaxAttempts:  parseInt(getEnv("CLEANUP_MAX_ATTEMPTS", "5"), 5),
		CleanupPollInterval: parseDuration(getEnv("CLEANUP_POLL_INTERVAL", "30s"), 30*time.Second),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

// databaseURL prefers DATABASE_URL and falls back to the discrete DB_* variables.
func databaseURL() string {
	if v, ok := os.LookupEnv("DATABASE_URL"); ok && v != "" {
		return v
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(getEnv("DB_USER", "tourism"), getEnv("DB_PASSWORD", "tourism_secret")),
		Host:     fmt.Sprintf("%s:%s", getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432")),
		Path:     "/" + getEnv("DB_NAME", "tourism_dev"),
		RawQuery: "sslmode=" + getEnv("DB_SSLMODE", "disable"),
	}
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}
	return d
}

func parseBool(s string, defaultValue bool) bool {
	value, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesLocalStorage reports whether uploads are written to UploadDir.
func (c *Config) UsesLocalStorage() bool {
	return c.StorageDriver == "" || c.StorageDriver == "local"
}

// Storage returns the file storage settings. Local files are served under
// PublicBaseURL/uploads.
func (c *Config) Storage() storage.Config {
	return storage.Config{
		Driver:   c.StorageDriver,
		LocalDir: c.UploadDir,
		LocalURL: c.PublicBaseURL + "/uploads",
		S3: storage.S3Config{
			Endpoint:  c.S3Endpoint,
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			PublicURL: c.S3PublicURL,
		},
	}
}
