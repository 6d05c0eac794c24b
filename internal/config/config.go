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
	SMTP     SMTPConfig
	Chat     ChatConfig
	Booking  BookingConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	PublicDir          string
}

type DatabaseConfig struct {
	Driver     string // "sqlite" or "postgres"
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type ChatConfig struct {
	APIKey             string
	Model              string
	BaseURL            string
	TimeoutSeconds     int
	RateLimitPerMinute int
	LogFilePath        string // outbound chat log; empty uses the main logger
}

type BookingConfig struct {
	JoinLinkBaseURL string
	EventsTopic     string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			PublicDir:          getEnv("PUBLIC_DIR", "public"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			Connection: getEnv("DB_CONNECTION_STRING", "wellness.db"),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Mindful Campus"),
		},
		Chat: ChatConfig{
			APIKey:             getEnv("OPENAI_API_KEY", ""),
			Model:              getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL:            getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			TimeoutSeconds:     getEnvAsInt("CHAT_TIMEOUT_SECONDS", 20),
			RateLimitPerMinute: getEnvAsInt("CHAT_RATE_LIMIT_PER_MINUTE", 20),
			LogFilePath:        getEnv("CHAT_LOG_FILE_PATH", "logs/chat.log"),
		},
		Booking: BookingConfig{
			JoinLinkBaseURL: getEnv("JOIN_LINK_BASE_URL", "https://mindful-campus.local/join"),
			EventsTopic:     getEnv("BOOKING_EVENTS_TOPIC", "SESSION_BOOKED"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
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
