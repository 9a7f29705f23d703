package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, constructed once at startup and
// passed to the components that need it. Never module-level mutable state.
type Config struct {
	App   AppConfig
	Store StoreConfig
	Email EmailConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name          string
	Version       string
	Port          string
	AllowedOrigin string
}

// StoreConfig holds record store configuration.
type StoreConfig struct {
	DataDir string
}

// EmailConfig holds SMTP transport settings. Sender identity, credential
// and operator recipient are secrets injected via the environment.
type EmailConfig struct {
	Enabled    bool
	SMTPHost   string
	SMTPPort   int
	Username   string
	Password   string
	FromEmail  string
	FromName   string
	AdminEmail string
}

// Load reads configuration from environment variables, with .env support
// for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Name:          getEnv("APP_NAME", "jiayee-contact-api"),
			Version:       getEnv("APP_VERSION", "1.0.0"),
			Port:          getEnv("PORT", "8080"),
			AllowedOrigin: getEnv("ALLOWED_ORIGIN", "*"),
		},
		Store: StoreConfig{
			DataDir: getEnv("CONTACT_DATA_DIR", "data"),
		},
		Email: EmailConfig{
			Enabled:    getEnvAsBool("EMAIL_ENABLED", false),
			SMTPHost:   getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:   getEnvAsInt("SMTP_PORT", 587),
			Username:   getEnv("SMTP_USERNAME", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			FromEmail:  getEnv("EMAIL_FROM", ""),
			FromName:   getEnv("EMAIL_FROM_NAME", "Jiayee Design"),
			AdminEmail: getEnv("ADMIN_EMAIL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
