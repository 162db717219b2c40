package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env             string
	HTTPPort        string
	StoreURI        string
	StoreDatabase   string
	Migrate         bool
	RateRPS         int
	ShutdownTimeout time.Duration
}

const defaultStoreURI = "mongodb://localhost:27017/exercisetracker"

// Load reads the environment, after merging a .env file from the working
// directory when one exists. Variables already set win over the file.
func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Env:             get("APP_ENV", "dev"),
		HTTPPort:        get("PORT", "3000"),
		StoreURI:        get("MONGO_URI", get("DATABASE_URL", defaultStoreURI)),
		StoreDatabase:   get("MONGO_DB", ""),
		Migrate:         getBool("APP_MIGRATE", true),
		RateRPS:         getInt("RATE_RPS", 0),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
	return cfg
}

func get(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

func getBool(key string, def bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return def
}
