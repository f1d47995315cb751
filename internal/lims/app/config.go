package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/ancestrybio/pkg/jwtx"
)

type Config struct {
	Issuer         string        // Optional: issuer claim for tokens (default: ancestrybio-lims)
	TokenTTL       time.Duration // Optional: access token lifetime (default: 8h)
	SigningKeyFile string        // Optional: PEM file holding the Ed25519 signing key; empty means ephemeral
	BootstrapToken string        // Optional: token required to perform bootstrap

	DBDriver     string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile string // Optional: path to SQLite database file (default: ./lims.db)
	DatabaseURL  string // Optional: Postgres DSN (postgres driver only)
	PepperFile   string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	BlobDriver      string // Optional: fs, s3 or memory (default: fs)
	BlobDir         string // Optional: fs driver root (default: ./blobdata)
	BlobS3Bucket    string // Required for s3
	BlobS3Region    string // Optional: (default: us-east-1)
	BlobS3Endpoint  string // Optional: custom endpoint, e.g. MinIO
	BlobS3PathStyle bool   // Optional: path-style addressing (default: false)
	MaxUploadMB     int    // Optional: upload size cap in MB (default: 10)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		Issuer:         getEnvOrDefault("LIMS_ISSUER", "ancestrybio-lims"),
		TokenTTL:       getEnvDurationOrDefault("LIMS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		SigningKeyFile: os.Getenv("LIMS_SIGNING_KEY_FILE"),
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"), // Optional: if set, required to perform bootstrap

		DBDriver:     getEnvOrDefault("LIMS_DB_DRIVER", "sqlite"),
		DatabaseFile: getEnvOrDefault("LIMS_DATABASE_FILE", "lims.db"),
		DatabaseURL:  os.Getenv("LIMS_DATABASE_URL"),
		PepperFile:   getEnvOrDefault("LIMS_PEPPER_FILE", "pepper"),

		BlobDriver:      getEnvOrDefault("LIMS_BLOB_DRIVER", "fs"),
		BlobDir:         getEnvOrDefault("LIMS_BLOB_DIR", "blobdata"),
		BlobS3Bucket:    os.Getenv("LIMS_BLOB_S3_BUCKET"),
		BlobS3Region:    getEnvOrDefault("LIMS_BLOB_S3_REGION", "us-east-1"),
		BlobS3Endpoint:  os.Getenv("LIMS_BLOB_S3_ENDPOINT"),
		BlobS3PathStyle: getEnvBoolOrDefault("LIMS_BLOB_S3_PATH_STYLE", false),
		MaxUploadMB:     getEnvIntOrDefault("LIMS_MAX_UPLOAD_MB", 10),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// MaxUploadBytes converts MaxUploadMB, falling back to 10 MB.
func (c Config) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return 10 << 20
	}
	return int64(c.MaxUploadMB) << 20
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
