package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	AppName string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	SecretKey       string
	TokenTTLMinutes int

	AdminEmail    string
	AdminPassword string

	AllowedOrigins string

	// OpenRouter completion service (chat assistant)
	OpenRouterAPIKey string
	AIModel          string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	ttl, _ := strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"))
	if ttl <= 0 {
		ttl = 15
	}

	return &Config{
		Port:    getEnv("PORT", "8000"),
		AppName: getEnv("APP_NAME", "Arain Association Youth Wing Pakistan"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "arain_association"),

		SecretKey:       getEnv("SECRET_KEY", "your-secret-key-change-in-production"),
		TokenTTLMinutes: ttl,

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@arainyouthwing.org"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		AIModel:          getEnv("AI_MODEL", "anthropic/claude-3-haiku"),
	}
}

// OriginsList splits ALLOWED_ORIGINS into the slice the CORS middleware expects
func (c *Config) OriginsList() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
