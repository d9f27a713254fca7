package config

import (
	"os"
	"strconv"
)

// Config holds portal configuration, loaded from the environment.
type Config struct {
	Port        string
	StoreURL    string
	StateDir    string
	LogLevel    string
	AuthRPS     float64
	AuthBurst   int
	MetricsPath string
}

func Load() Config {
	return Config{
		Port:        env("PORT", "8080"),
		StoreURL:    env("STORE_URL", "http://localhost:9090"),
		StateDir:    env("STATE_DIR", defaultStateDir()),
		LogLevel:    env("LOG_LEVEL", "info"),
		AuthRPS:     envFloat("AUTH_RPS", 5),
		AuthBurst:   envInt("AUTH_BURST", 10),
		MetricsPath: env("METRICS_PATH", "/metrics"),
	}
}

func defaultStateDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir + "/hospital-portal"
	}
	return ".hospital-portal"
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
