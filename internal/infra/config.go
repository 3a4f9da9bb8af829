package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"tagsmith/internal/tagger"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv              string
	LogLevel            string
	Port                string
	DatabaseURL         string
	GeoIPDBPath         string
	VocabularyPath      string
	CORSAllowedOrigins  []string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPIdleTimeout     time.Duration
	RateLimitPerMin     int
	MaxRequestBytes     int64
	ScorePolicy         string
	SimilarityThreshold float64
	ProximityWindow     int
	MinTokenLength      int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	defaults := tagger.DefaultOptions()
	cfg := &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		GeoIPDBPath:         os.Getenv("GEOIP_DB_PATH"),
		VocabularyPath:      os.Getenv("VOCABULARY_PATH"),
		CORSAllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		HTTPReadTimeout:     time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:    time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:     time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:     getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		MaxRequestBytes:     int64(getEnvInt("MAX_REQUEST_BYTES", 64<<10)),
		ScorePolicy:         getEnv("SCORE_POLICY", "fixed"),
		SimilarityThreshold: getEnvFloat("SIMILARITY_THRESHOLD", defaults.SimilarityThreshold),
		ProximityWindow:     getEnvInt("PROXIMITY_WINDOW", defaults.ProximityWindow),
		MinTokenLength:      getEnvInt("MIN_TOKEN_LENGTH", defaults.MinTokenLength),
	}

	if cfg.SimilarityThreshold <= 0 || cfg.SimilarityThreshold > 1 {
		return nil, fmt.Errorf("SIMILARITY_THRESHOLD must be in (0, 1], got %v", cfg.SimilarityThreshold)
	}
	if cfg.ProximityWindow < 1 {
		return nil, fmt.Errorf("PROXIMITY_WINDOW must be positive, got %d", cfg.ProximityWindow)
	}
	if cfg.MinTokenLength < 1 {
		return nil, fmt.Errorf("MIN_TOKEN_LENGTH must be positive, got %d", cfg.MinTokenLength)
	}
	if cfg.MaxRequestBytes < 1 {
		return nil, fmt.Errorf("MAX_REQUEST_BYTES must be positive, got %d", cfg.MaxRequestBytes)
	}
	if _, err := tagger.ParseScorePolicy(cfg.ScorePolicy); err != nil {
		return nil, fmt.Errorf("SCORE_POLICY: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs with APP_ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// TaggerOptions converts the tuning variables into generator options.
func (c *Config) TaggerOptions() (tagger.Options, error) {
	score, err := tagger.ParseScorePolicy(c.ScorePolicy)
	if err != nil {
		return tagger.Options{}, err
	}
	opts := tagger.DefaultOptions()
	opts.Score = score
	opts.SimilarityThreshold = c.SimilarityThreshold
	opts.ProximityWindow = c.ProximityWindow
	opts.MinTokenLength = c.MinTokenLength
	return opts, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
