package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Ai       AIConfig
	Infra    InfraConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret string
}

type AIConfig struct {
	LLMProvider   string // "openai" or "ollama"
	LLMModel      string
	LLMBaseURL    string // OpenAI-compatible gateway; empty means api.openai.com
	LLMApiKey     string
	OllamaBaseURL string

	ImageProvider       string // "openai" or "integration"
	ImageModel          string
	ImageSize           string
	ImageBaseURL        string
	ImageApiKey         string
	ImageIntegrationURL string // GET <url>?prompt=...
}

type InfraConfig struct {
	NatsURL                  string
	RedisURL                 string
	EventTopic               string
	GenerationLock           string // "memory" or "redis"
	GenerationLockTTLMinutes int
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	openAIKey := getEnv("OPENAI_API_KEY", "")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "openai"),
			LLMModel:      getEnv("LLM_MODEL", "gpt-4o"),
			LLMBaseURL:    getEnv("LLM_BASE_URL", ""),
			LLMApiKey:     getEnv("LLM_API_KEY", openAIKey),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),

			ImageProvider:       getEnv("IMAGE_PROVIDER", "openai"),
			ImageModel:          getEnv("IMAGE_MODEL", "dall-e-3"),
			ImageSize:           getEnv("IMAGE_SIZE", "1024x1024"),
			ImageBaseURL:        getEnv("IMAGE_BASE_URL", ""),
			ImageApiKey:         getEnv("IMAGE_API_KEY", openAIKey),
			ImageIntegrationURL: getEnv("IMAGE_INTEGRATION_URL", ""),
		},
		Infra: InfraConfig{
			NatsURL:                  getEnv("NATS_URL", ""),
			RedisURL:                 getEnv("REDIS_URL", "redis://localhost:6379"),
			EventTopic:               getEnv("STORY_EVENT_TOPIC", "STORY_EVENTS"),
			GenerationLock:           getEnv("GENERATION_LOCK", "memory"),
			GenerationLockTTLMinutes: getEnvAsInt("GENERATION_LOCK_TTL_MINUTES", 15),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
