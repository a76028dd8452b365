package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Line      LineConfig
	Hotpepper HotpepperConfig
	Payment   PaymentConfig
	Ai        AIConfig
	Bot       BotConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	SessionBackend     string // "memory" or "redis"
}

type DatabaseConfig struct {
	Connection string
}

type LineConfig struct {
	ChannelToken  string
	ChannelSecret string
}

type HotpepperConfig struct {
	APIKey string
}

type PaymentConfig struct {
	ServerKey     string
	IsProduction  bool
	PortalBaseURL string
}

type AIConfig struct {
	Provider      string // "openai" or "ollama"
	Model         string
	OpenAIAPIKey  string
	OllamaBaseURL string
}

type BotConfig struct {
	RecommendCount int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			SessionBackend:     getEnv("SESSION_BACKEND", "memory"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Line: LineConfig{
			ChannelToken:  getEnv("LINE_CHANNEL_ACCESS_TOKEN", ""),
			ChannelSecret: getEnv("LINE_CHANNEL_SECRET", ""),
		},
		Hotpepper: HotpepperConfig{
			APIKey: getEnv("HOTPEPPER_API_KEY", ""),
		},
		Payment: PaymentConfig{
			ServerKey:     getEnv("MIDTRANS_SERVER_KEY", ""),
			IsProduction:  getEnv("MIDTRANS_IS_PRODUCTION", "false") == "true",
			PortalBaseURL: getEnv("BILLING_PORTAL_URL", ""),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "openai"),
			Model:         getEnv("LLM_MODEL", "gpt-4"),
			OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Bot: BotConfig{
			RecommendCount: getEnvAsInt("RECOMMEND_COUNT", 3),
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
