package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	HTTPAddr string

	// direct: run statements on the in-process database client.
	// proxy: ship statements to PROXY_BASE_URL/api/db with local fallback.
	StorageMode string

	DatabaseURL    string
	DatabaseClient string // pgx | sql
	ProxyBaseURL   string
	LocalStoreDir  string

	AdminUser  string
	AdminPass  string
	AdminToken string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	LogLevel  string
	LogFormat string // text | json
	LogFile   string // empty disables file output
}

func Load() Config {
	return Config{
		AppEnv:   get("APP_ENV", "dev"),
		HTTPAddr: get("HTTP_ADDR", ":8080"),

		StorageMode: get("STORAGE_MODE", "direct"),

		DatabaseURL:    get("DATABASE_URL", ""),
		DatabaseClient: get("DATABASE_CLIENT", "pgx"),
		ProxyBaseURL:   get("PROXY_BASE_URL", "http://localhost:8080"),
		LocalStoreDir:  get("LOCAL_STORE_DIR", "./data"),

		AdminUser:  get("ADMIN_USER", "admin"),
		AdminPass:  get("ADMIN_PASS", ""),
		AdminToken: get("ADMIN_TOKEN", ""),

		SMTPHost: get("SMTP_HOST", ""),
		SMTPPort: getInt("SMTP_PORT", 587),
		SMTPUser: get("SMTP_USER", ""),
		SMTPPass: get("SMTP_PASS", ""),
		SMTPFrom: get("SMTP_FROM", ""),

		LogLevel:  get("LOG_LEVEL", "info"),
		LogFormat: get("LOG_FORMAT", "text"),
		LogFile:   get("LOG_FILE", ""),
	}
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
