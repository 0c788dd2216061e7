// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort   string
	Environment  string
	DatabasePath string

	JWTSecretKey string
	SessionTTL   time.Duration
	// BridgeKey is the shared secret the inbound-email bridge must present
	// in the X-Bridge-Key header.
	BridgeKey string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	AIModel       string

	ContextWindowSize int
	InsightsThreshold int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromAddress  string
	SiteURL      string
	ReplyDomain  string
}

// Load reads configuration from environment variables or .env file.
func Load() *Config {
	env := os.Getenv("ENV")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		Environment:  env,
		DatabasePath: getEnv("DATABASE_PATH", "blendchat.db"),

		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		SessionTTL:   getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		BridgeKey:    getEnv("BRIDGE_KEY", ""),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		AIModel:       getEnv("AI_MODEL", "gpt-4o-mini"),

		ContextWindowSize: getEnvAsInt("CONTEXT_WINDOW_SIZE", 10),
		InsightsThreshold: getEnvAsInt("INSIGHTS_THRESHOLD", 5),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromAddress:  getEnv("FROM_ADDRESS", "invites@chatbudi.com"),
		SiteURL:      getEnv("SITE_URL", "http://localhost:8080"),
		ReplyDomain:  getEnv("REPLY_DOMAIN", "chatbudi.com"),
	}

	// Validation for production environments
	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.JWTSecretKey == "" {
			missing = append(missing, "JWT_SECRET_KEY")
		}
		if cfg.BridgeKey == "" {
			missing = append(missing, "BRIDGE_KEY")
		}
		if cfg.OpenAIAPIKey == "" {
			missing = append(missing, "OPENAI_API_KEY")
		}
		if cfg.SMTPHost == "" {
			missing = append(missing, "SMTP_HOST")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}

// getEnvAsDuration gets an env var as a Go duration string, with a fallback.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as duration. Using default value.", key)
		return defaultValue
	}
	return d
}
