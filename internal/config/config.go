// Package config loads application configuration from environment variables.
//
// # Environment Variables
//
// ## Server
//   - SERVER_PORT: HTTP listen port (default: 8080)
//
// ## Forum backend
//   - FORUM_API_BASE_URL: Base URL of the GitForum backend API (default: http://localhost:8000/api/forum)
//   - FORUM_API_TIMEOUT_SECONDS: Upstream request timeout (default: 10)
//
// ## Snapshot store
//   - SNAPSHOT_DB_PATH: SQLite snapshot database path (default: trending.db)
//
// ## Trending
//   - TRENDING_LIKE_WEIGHT: Engagement weight for likes (default: 1.0)
//   - TRENDING_COMMENT_WEIGHT: Engagement weight for comments (default: 2.0)
//   - TRENDING_FORK_WEIGHT: Engagement weight for forks (default: 3.0)
//   - TRENDING_DECAY_EXPONENT: Age decay exponent (default: 1.5)
//   - TRENDING_MIN_AGE_HOURS: Age floor in hours (default: 0.0166667, one minute)
//   - TRENDING_HOT_THRESHOLD: Highest rank that gets the hot badge (default: 3)
//   - TRENDING_REFRESH_MINUTES: Score refresh interval (default: 15)
//   - TRENDING_CACHE_TTL_SECONDS: Response cache TTL (default: 60)
//   - TRENDING_CACHE_MAX_SIZE: Response cache max entries (default: 500)
//
// ## Gemini
//   - GEMINI_API_KEY: Google Gemini API key (AI endpoints disabled when empty)
//   - GEMINI_CHAT_MODEL: Model for commit/review generation (default: gemini-2.0-flash)
//
// ## Tracing
//   - TRACING_ENABLED: Enable OTLP tracing (default: false)
//   - TRACING_ENDPOINT: OTLP gRPC endpoint (default: localhost:4317)
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Forum backend configuration
	ForumBaseURL        string
	ForumTimeoutSeconds int

	// Snapshot store
	SnapshotDBPath string

	// Trending configuration
	Trending TrendingConfig

	// Gemini configuration
	GeminiAPIKey    string
	GeminiChatModel string

	// Tracing configuration
	TracingEnabled  bool
	TracingEndpoint string
}

// TrendingConfig contains the ranking constants and pipeline settings.
type TrendingConfig struct {
	// Engagement weights for the trending score formula
	LikeWeight    float64
	CommentWeight float64
	ForkWeight    float64

	// Age decay exponent (default 1.5)
	DecayExponent float64

	// Minimum post age in hours when dividing by age (default one minute)
	MinAgeHours float64

	// Highest rank that still gets the hot badge (default 3)
	HotThreshold int

	// Score refresh interval in minutes (default 15, mirrors the backend's
	// periodic recompute)
	RefreshMinutes int

	// Response cache TTL in seconds (default 60)
	CacheTTLSeconds int

	// Response cache max entries (default 500)
	CacheMaxSize int
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		ForumBaseURL:        getEnv("FORUM_API_BASE_URL", "http://localhost:8000/api/forum"),
		ForumTimeoutSeconds: getEnvInt("FORUM_API_TIMEOUT_SECONDS", 10),

		SnapshotDBPath: getEnv("SNAPSHOT_DB_PATH", "trending.db"),

		Trending: TrendingConfig{
			LikeWeight:      getEnvFloat("TRENDING_LIKE_WEIGHT", 1.0),
			CommentWeight:   getEnvFloat("TRENDING_COMMENT_WEIGHT", 2.0),
			ForkWeight:      getEnvFloat("TRENDING_FORK_WEIGHT", 3.0),
			DecayExponent:   getEnvFloat("TRENDING_DECAY_EXPONENT", 1.5),
			MinAgeHours:     getEnvFloat("TRENDING_MIN_AGE_HOURS", 1.0/60.0),
			HotThreshold:    getEnvInt("TRENDING_HOT_THRESHOLD", 3),
			RefreshMinutes:  getEnvInt("TRENDING_REFRESH_MINUTES", 15),
			CacheTTLSeconds: getEnvInt("TRENDING_CACHE_TTL_SECONDS", 60),
			CacheMaxSize:    getEnvInt("TRENDING_CACHE_MAX_SIZE", 500),
		},

		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiChatModel: getEnv("GEMINI_CHAT_MODEL", "gemini-2.0-flash"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
