package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	APIBaseURL      string
	AssetBaseURL    string
	SessionTTL      int64
	UpstreamTimeout int64
	VideosPath      string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		APIBaseURL:      getEnv("API_BASE_URL", "http://localhost:5000"),
		AssetBaseURL:    getEnv("ASSET_BASE_URL", ""),
		SessionTTL:      getEnvAsInt64("SESSION_TTL", 30*24*60*60), // 30 days
		UpstreamTimeout: getEnvAsInt64("UPSTREAM_TIMEOUT", 30),
		VideosPath:      getEnv("VIDEOS_PATH", "./data/videos.json"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
