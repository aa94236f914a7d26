package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the handlers need. It is built once at startup
// and passed down explicitly so tests can swap origin lists and endpoint
// URLs without touching process-wide state.
type Config struct {
	// ServiceAccountJSON is the raw Google service-account key. Empty means
	// "not configured" and read requests answer with useDefaults.
	ServiceAccountJSON string
	SpreadsheetID      string

	// AllowedOrigins authenticates callers; it does not restrict CORS.
	// Entries may contain "*" wildcards (e.g. https://*.example.app).
	AllowedOrigins []string

	// SheetsBaseURL and TokenURL override the Google endpoints. Both are
	// empty in production (the key's token_uri and the public Sheets API
	// are used); tests point them at httptest servers.
	SheetsBaseURL string
	TokenURL      string

	Port string
}

func LoadEnv() error {
	// Try to load .env file if it exists (for local development).
	// On production the environment variables are set directly, so a
	// missing file is not an error.
	if err := godotenv.Load(); err != nil {
		return nil
	}
	return nil
}

// Load builds a Config from the environment. Missing sheet credentials are
// deliberately not fatal: the service still starts and answers reads with
// useDefaults so the form can render from static data.
func Load() *Config {
	cfg := &Config{
		ServiceAccountJSON: os.Getenv("GOOGLE_SERVICE_ACCOUNT_KEY"),
		SpreadsheetID:      os.Getenv("GOOGLE_SHEET_ID"),
		AllowedOrigins:     splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		Port:               GetEnv("PORT", "8080"),
	}

	if cfg.ServiceAccountJSON == "" {
		log.Println("WARNING: GOOGLE_SERVICE_ACCOUNT_KEY not set - reads will return defaults, writes will fail")
	}
	if cfg.SpreadsheetID == "" {
		log.Println("WARNING: GOOGLE_SHEET_ID not set - reads will return defaults, writes will fail")
	}
	if len(cfg.AllowedOrigins) == 0 {
		log.Println("WARNING: ALLOWED_ORIGINS not set - only bearer-carrying requests will authenticate")
	}

	return cfg
}

// HasCredentials reports whether the service can reach the spreadsheet at
// all. Callers treat false as "serve static defaults", not as an error.
func (c *Config) HasCredentials() bool {
	return c.ServiceAccountJSON != "" && c.SpreadsheetID != ""
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
