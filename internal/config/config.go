package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Keys      APIKeys
	Ai        AIConfig
	Diagnosis DiagnosisConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	OracleLogFilePath  string
	CorsAllowedOrigins string
	NatsURL            string // empty disables event publishing
	RedisURL           string
	ReindexTopic       string
	OtelEnabled        bool
}

type DatabaseConfig struct {
	Connection string
	Debug      bool
}

type APIKeys struct {
	Groq         string
	OpenAI       string
	Anthropic    string
	GoogleGemini string
	Admin        string // empty leaves admin routes open
}

type AIConfig struct {
	EmbeddingProvider  string // "gemini" or "ollama"
	EmbeddingModel     string
	OllamaBaseURL      string
	LLMProvider        string // "ollama", "groq", "openai", "anthropic", "gemini", "mock"
	LLMModel           string
	LLMBaseURL         string
	OracleTimeout      time.Duration
	TranscriptionModel string
	TranscriptionURL   string
	VisionModel        string
}

type DiagnosisConfig struct {
	SessionStore string // "memory" or "postgres"
	Index        string // "memory" or "pgvector"
	Lock         string // "local" or "redis"
	SessionTTL   time.Duration
	LockTTL      time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			OracleLogFilePath:  getEnv("ORACLE_LOG_FILE_PATH", "logs/oracle.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			ReindexTopic:       getEnv("CATALOG_REINDEX_TOPIC_NAME", "CATALOG_REINDEX"),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
			Debug:      getEnvAsBool("DB_DEBUG", false),
		},
		Keys: APIKeys{
			Groq:         getEnv("GROQ_API_KEY", ""),
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
			Anthropic:    getEnv("ANTHROPIC_API_KEY", ""),
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Admin:        getEnv("ADMIN_TOKEN", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider:  getEnv("EMBEDDING_PROVIDER", "ollama"),
			EmbeddingModel:     getEnv("EMBEDDING_MODEL", "nomic-embed-text"),
			OllamaBaseURL:      getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			LLMProvider:        getEnv("LLM_PROVIDER", "groq"),
			LLMModel:           getEnv("LLM_MODEL", "llama-3.3-70b-versatile"),
			LLMBaseURL:         getEnv("LLM_BASE_URL", ""),
			OracleTimeout:      getEnvAsDuration("ORACLE_TIMEOUT", 20*time.Second),
			TranscriptionModel: getEnv("TRANSCRIPTION_MODEL", "whisper-large-v3"),
			TranscriptionURL:   getEnv("TRANSCRIPTION_BASE_URL", "https://api.groq.com/openai/v1"),
			VisionModel:        getEnv("VISION_MODEL", "gemini-2.0-flash"),
		},
		Diagnosis: DiagnosisConfig{
			SessionStore: getEnv("SESSION_STORE", "memory"),
			Index:        getEnv("SIMILARITY_INDEX", "memory"),
			Lock:         getEnv("SESSION_LOCK", "local"),
			SessionTTL:   getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			LockTTL:      getEnvAsDuration("SESSION_LOCK_TTL", 30*time.Second),
		},
	}
}

// LLMAPIKey picks the key matching the configured oracle provider
func (c *Config) LLMAPIKey() string {
	switch c.Ai.LLMProvider {
	case "groq":
		return c.Keys.Groq
	case "openai":
		return c.Keys.OpenAI
	case "anthropic":
		return c.Keys.Anthropic
	case "gemini":
		return c.Keys.GoogleGemini
	default:
		return ""
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("20s") or plain seconds ("20")
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	if seconds := getEnvAsInt(key, -1); seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}
