package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Record storage
	StoreDriver   string // memory, file, sqlite, postgres, redis, mongo
	StoreDSN      string // sqlite path or postgres URL; empty = driver default
	StoreDir      string // file driver directory
	RedisAddr     string
	MongoURI      string
	MongoDatabase string

	// Sessions
	QuestionFile string         // empty = built-in pool
	SampleSize   int
	TimeLimit    *time.Duration // nil = no limit

	LogFormat string // json or text
	LogLevel  slog.Level
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		StoreDriver:   getenvDefault("STORE_DRIVER", "sqlite"),
		StoreDSN:      os.Getenv("STORE_DSN"),
		StoreDir:      getenvDefault("STORE_DIR", "./data"),
		RedisAddr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
		MongoURI:      getenvDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenvDefault("MONGO_DATABASE", "quiz"),
		QuestionFile:  os.Getenv("QUESTION_FILE"),
		SampleSize:    mustGetInt("SAMPLE_SIZE", 5),
		TimeLimit:     optionalDuration("TIME_LIMIT"),
		LogFormat:     strings.ToLower(getenvDefault("LOG_FORMAT", "json")),
		LogLevel:      mustGetLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

func mustGetInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}

func optionalDuration(k string) *time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Fatalf("config: %s=%q is not a valid duration", k, v)
	}
	return &d
}

func mustGetLevel(k string, fallback slog.Level) slog.Level {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		log.Fatalf("config: %s=%q is not a valid log level: %v", k, v, err)
	}
	return level
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

// NewLogger builds the process logger described by c.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
