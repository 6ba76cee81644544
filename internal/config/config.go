package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Embedding EmbeddingConfig
	Pinecone  PineconeConfig
	Redis     RedisConfig
	Postgres  PostgresConfig
	Teams     TeamsConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Port           string
	Environment    string
	AllowedOrigins []string
}

type EmbeddingConfig struct {
	// Provider selects the embeddings backend: "openai" (default) or "gemini".
	Provider string
	APIKey   string
	Model    string
	// Timeout covers the full embedding round trip, sized for model latency.
	Timeout time.Duration
}

type PineconeConfig struct {
	APIKey string
	// IndexHost is the full https endpoint of the index.
	IndexHost string
	Timeout   time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type TeamsConfig struct {
	WebhookURL string
}

type MetricsConfig struct {
	Enabled   bool
	Namespace string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getenv("PORT", "8080"),
			Environment:    getenv("ENVIRONMENT", "production"),
			AllowedOrigins: []string{getenv("FRONTEND_ORIGIN", "http://localhost:3000")},
		},
		Embedding: EmbeddingConfig{
			Provider: getenv("EMBEDDING_PROVIDER", "openai"),
			APIKey:   getenv("EMBEDDING_API_KEY", os.Getenv("OPENAI_API_KEY")),
			Model:    os.Getenv("EMBEDDING_MODEL"),
			Timeout:  getenvDuration("EMBEDDING_TIMEOUT", 30*time.Second),
		},
		Pinecone: PineconeConfig{
			APIKey:    os.Getenv("PINECONE_API_KEY"),
			IndexHost: os.Getenv("PINECONE_INDEX_HOST"),
			Timeout:   getenvDuration("PINECONE_TIMEOUT", 5*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getenvInt("REDIS_DB", 0),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("AURORA_HOST", "localhost"),
			Port:        getenv("AURORA_PORT", "5432"),
			User:        os.Getenv("AURORA_USER"),
			Password:    os.Getenv("AURORA_PASSWORD"),
			Database:    os.Getenv("AURORA_DB"),
			SSLMode:     getenv("AURORA_SSLMODE", "disable"),
		},
		Teams: TeamsConfig{
			WebhookURL: os.Getenv("TEAMS_WEBHOOK_URL"),
		},
		Metrics: MetricsConfig{
			Enabled:   getenv("METRICS_ENABLED", "true") == "true",
			Namespace: getenv("METRICS_NAMESPACE", "SOC-Nexus/Health"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
