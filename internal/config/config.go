package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

type Config struct {
	ServerPort  string
	DatabaseURL string
	RedisURL    string
	JWTSecret   string
	JWTExpiry   time.Duration
	LogLevel    string

	// Twilio alert fan-out
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	TwilioWhatsApp   bool
	AlertRecipients  []string

	// Medicine explanation provider (OpenAI-compatible, Groq by default)
	InferenceAPIKey  string
	InferenceBaseURL string
	InferenceModel   string
}

func LoadConfig() (*Config, error) {
	expiryStr := getEnv("JWT_EXPIRY", "168h") // tokens are valid for 7 days
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		return nil, errors.New("invalid JWT_EXPIRY format")
	}

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTExpiry:   expiry,
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),
		TwilioWhatsApp:   os.Getenv("TWILIO_USE_WHATSAPP") == "true",
		AlertRecipients:  splitList(os.Getenv("ALERT_RECIPIENT_NUMBERS")),

		InferenceAPIKey:  os.Getenv("GROQ_API_KEY"),
		InferenceBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		InferenceModel:   getEnv("GROQ_MODEL", "openai/gpt-oss-120b"),
	}

	// Validate required fields
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.RedisURL == "" {
		return nil, errors.New("REDIS_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

// Helper: get env with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Helper: parse a comma-separated env value into trimmed entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
