package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Model    ModelConfig
	Cache    CacheConfig
	Database DatabaseConfig
	Reco     RecoConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type ModelConfig struct {
	Path string
}

type CacheConfig struct {
	TTL     time.Duration
	MaxSize int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string

	// UseDBCatalog overlays the artifact's embedded catalog and review
	// log with the courses/reviews tables from MySQL.
	UseDBCatalog bool
}

type RecoConfig struct {
	DefaultCount int
	MaxCount     int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "MultiSkill Academy Recommendation API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Model: ModelConfig{
			Path: getEnv("MODEL_PATH", "models/recommendation_model.json"),
		},
		Cache: CacheConfig{
			TTL:     time.Duration(getEnvInt("CACHE_TTL", 3600)) * time.Second,
			MaxSize: getEnvInt("MAX_CACHE_SIZE", 1000),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "3306"),
			User:         getEnv("DB_USER", "root"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_NAME", "courses_data"),
			UseDBCatalog: getEnvBool("USE_DB_CATALOG", false),
		},
		Reco: RecoConfig{
			DefaultCount: getEnvInt("DEFAULT_REC_COUNT", 10),
			MaxCount:     getEnvInt("MAX_REC_COUNT", 50),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}

	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}

	return defaultVal
}
