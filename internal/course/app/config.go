package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	courseapi "github.com/gtrskylin3/CourseWebsite/internal/course/http"
	"github.com/gtrskylin3/CourseWebsite/internal/course/telemetry"
	"github.com/gtrskylin3/CourseWebsite/pkg/jwtx"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Key modes.
const (
	KeyModeFile      = "file"
	KeyModeEphemeral = "ephemeral"
)

type Config struct {
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Consumed refresh token cleanup interval (default: 1h)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite database file (default: ./course.db)
	DatabaseURL    string // Postgres URL, required with the postgres driver

	Issuer         string // iss claim stamped into and required from every token
	KeyMode        string // file or ephemeral (default: file)
	PrivateKeyFile string // PEM private key (default: certs/private.pem)
	PublicKeyFile  string // PEM public key (default: certs/public.pem)
	RSABits        int    // Key size in ephemeral mode (default: 2048)

	AccessTokenTTL  time.Duration // default: 60m
	RefreshTokenTTL time.Duration // default: 60 days
	Transport       string        // cookie or header (default: cookie)
	CookieSecure    bool          // Secure attribute on token cookies (default: true)
	RefreshRotation bool          // Spend refresh tokens on use (default: true)
	PepperFile      string        // Password pepper, created when missing (default: ./pepper)

	TracesExporter string // none, stdout, otlp or otlphttp (default: none)
	MetricsEnabled bool   // Serve /metrics (default: true)
}

func LoadConfig() Config {
	return Config{
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),

		DatabaseDriver: getEnvOrDefault("DATABASE_DRIVER", DriverSQLite),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "course.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		Issuer:         getEnvOrDefault("AUTH_ISSUER", "course-website"),
		KeyMode:        getEnvOrDefault("AUTH_KEY_MODE", KeyModeFile),
		PrivateKeyFile: getEnvOrDefault("AUTH_PRIVATE_KEY_FILE", "certs/private.pem"),
		PublicKeyFile:  getEnvOrDefault("AUTH_PUBLIC_KEY_FILE", "certs/public.pem"),
		RSABits:        getEnvIntOrDefault("AUTH_RSA_BITS", jwtx.DefaultRSABits),

		AccessTokenTTL:  getEnvDurationOrDefault("AUTH_ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTokenTTL: getEnvDurationOrDefault("AUTH_REFRESH_TOKEN_TTL", jwtx.DefaultRefreshTokenTTL),
		Transport:       strings.ToLower(getEnvOrDefault("AUTH_TRANSPORT", courseapi.TransportCookie)),
		CookieSecure:    getEnvBoolOrDefault("AUTH_COOKIE_SECURE", true),
		RefreshRotation: getEnvBoolOrDefault("AUTH_REFRESH_ROTATION", true),
		PepperFile:      getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),

		TracesExporter: strings.ToLower(getEnvOrDefault("OTEL_TRACES_EXPORTER", telemetry.ExporterNone)),
		MetricsEnabled: getEnvBoolOrDefault("METRICS_ENABLED", true),
	}
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	if !courseapi.ValidTransport(c.Transport) {
		errs = append(errs, fmt.Errorf("AUTH_TRANSPORT must be %q or %q, got %q",
			courseapi.TransportCookie, courseapi.TransportHeader, c.Transport))
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required with the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER must be %q or %q, got %q",
			DriverSQLite, DriverPostgres, c.DatabaseDriver))
	}

	if c.KeyMode != KeyModeFile && c.KeyMode != KeyModeEphemeral {
		errs = append(errs, fmt.Errorf("AUTH_KEY_MODE must be %q or %q, got %q",
			KeyModeFile, KeyModeEphemeral, c.KeyMode))
	}

	if !telemetry.ValidExporter(c.TracesExporter) {
		errs = append(errs, fmt.Errorf("OTEL_TRACES_EXPORTER %q is not supported", c.TracesExporter))
	}

	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		errs = append(errs, errors.New("token lifetimes must be positive"))
	}
	if c.Issuer == "" {
		errs = append(errs, errors.New("AUTH_ISSUER must not be empty"))
	}

	return errors.Join(errs...)
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

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
