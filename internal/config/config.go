package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Gemini  GeminiConfig
	Qdrant  QdrantConfig
	Storage StorageConfig
	Scoring ScoringConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type CatalogConfig struct {
	Path      string
	ReloadTTL time.Duration
}

type GeminiConfig struct {
	APIKey string
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

type ScoringConfig struct {
	// Strategy selects the similarity backend: "auto", "tfidf" or "embedding".
	// "auto" prefers embeddings and falls back to TF-IDF when the embedding
	// backend cannot be initialized.
	Strategy       string
	SkillWeight    float64
	ContextWeight  float64
	FuzzyThreshold float64
	CacheSize      int
	MaxEmbedChars  int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Catalog: CatalogConfig{
			Path:      getEnv("CATALOG_PATH", "./job_descriptions.csv"),
			ReloadTTL: getEnvAsDuration("CATALOG_RELOAD_TTL", "10m"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", "http://localhost:6333"),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "skillmatch_jobs"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Scoring: ScoringConfig{
			Strategy:       getEnv("SIMILARITY_STRATEGY", "auto"),
			SkillWeight:    getEnvAsFloat("SKILL_WEIGHT", 0.6),
			ContextWeight:  getEnvAsFloat("CONTEXT_WEIGHT", 0.4),
			FuzzyThreshold: getEnvAsFloat("FUZZY_THRESHOLD", 0.8),
			CacheSize:      getEnvAsInt("SIMILARITY_CACHE_SIZE", 256),
			MaxEmbedChars:  getEnvAsInt("MAX_EMBED_CHARS", 5000),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
