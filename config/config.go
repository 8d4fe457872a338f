package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	// reCAPTCHA verification
	RecaptchaSecret    string
	RecaptchaVerifyURL string
	RecaptchaAction    string
	RecaptchaMinScore  float64
	// SMTP Configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string
	// Contact relay
	ContactEmailTo string
	// Resume upload limits
	MaxResumeBytes int64
	UploadDir      string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		// reCAPTCHA
		RecaptchaSecret:    getEnv("RECAPTCHA_SECRET_KEY", ""),
		RecaptchaVerifyURL: getEnv("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),
		RecaptchaAction:    getEnv("RECAPTCHA_EXPECTED_ACTION", "contact_form"),
		// Score threshold varies per deployment policy, 0.5 is the common default
		RecaptchaMinScore: getEnvFloat("RECAPTCHA_MIN_SCORE", 0.5),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", getEnv("EMAIL_USER", "")),
		SMTPPassword:  getEnv("SMTP_PASSWORD", getEnv("EMAIL_PASS", "")),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", getEnv("EMAIL_USER", "")),
		// Contact relay
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
		// Resume upload limits (5 MiB default)
		MaxResumeBytes: getEnvInt64("MAX_RESUME_BYTES", 5*1024*1024),
		UploadDir:      getEnv("UPLOAD_DIR", ""),
	}

	// Basic validation so misconfiguration is visible at startup, not mid-request
	if cfg.RecaptchaSecret == "" {
		log.Println("WARNING: RECAPTCHA_SECRET_KEY is missing. CAPTCHA verification will fail.")
	}
	if cfg.ContactEmailTo == "" {
		log.Println("WARNING: CONTACT_EMAIL_TO is missing. Contact relay has no recipient.")
	}

	return cfg, nil
}

// splitOrigins parses a comma separated origin allow-list, trimming trailing
// slashes so "https://example.com/" matches the Origin header form.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt64 returns an integer environment variable or fallback if not set/invalid
func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}
