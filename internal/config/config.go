package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config holds all application configuration
type Config struct {
	// API Settings
	APITitle   string
	APIVersion string
	APIPrefix  string
	Port       string

	// CORS
	CORSOrigins []string

	// Text providers
	QuranAPIBaseURL    string // primary: translations + Arabic script
	TranslatorID       int    // author id of the translation to pick
	FallbackAPIBaseURL string // fallback for Arabic script only

	// Similarity defaults. Threshold and limit carry the values the
	// original deployment shipped with; neither has a documented
	// derivation, so both stay configurable.
	SimilarityThreshold float64
	DefaultLimit        int
	MaxLimit            int

	// Width of the candidate embedding fan-out.
	EmbedWorkers int

	// Deadline for resolving the target verse and its embedding before
	// the candidate scan starts.
	ResolveTimeout time.Duration
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	return &Config{
		APITitle:    getEnv("API_TITLE", "Quran Semantic API"),
		APIVersion:  getEnv("API_VERSION", "1.0.0"),
		APIPrefix:   getEnv("API_PREFIX", "/api/v1"),
		Port:        getEnv("PORT", "8081"),
		CORSOrigins: parseCORSOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		QuranAPIBaseURL:    getEnv("QURAN_API_BASE_URL", "https://api.acikkuran.com"),
		TranslatorID:       getEnvInt("QURAN_TRANSLATOR_ID", 11), // Diyanet İşleri Başkanlığı
		FallbackAPIBaseURL: getEnv("FALLBACK_API_BASE_URL", "http://api.alquran.cloud/v1"),

		SimilarityThreshold: getEnvFloat("SIMILARITY_THRESHOLD", 0.65),
		DefaultLimit:        getEnvInt("SIMILARITY_DEFAULT_LIMIT", 8),
		MaxLimit:            getEnvInt("SIMILARITY_MAX_LIMIT", 50),

		EmbedWorkers:   getEnvInt("EMBED_WORKERS", 8),
		ResolveTimeout: getEnvDuration("RESOLVE_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return i
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue
		}
		return f
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil {
			return defaultValue
		}
		return d
	}
	return defaultValue
}

func parseCORSOrigins(value string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(value), &origins); err == nil {
		return origins
	}
	parts := strings.Split(value, ",")
	origins = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
