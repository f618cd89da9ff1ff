package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	ThreatStoreMemory = "memory"
	ThreatStoreRedis  = "redis"

	ForecastStub     = "stub"
	ForecastGigaChat = "gigachat"
	ForecastGemini   = "gemini"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Threat   ThreatConfig
	Sample   SampleConfig
	Forecast ForecastConfig
	GigaChat GigaChatConfig
	Gemini   GeminiConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

// StorageConfig selects where transaction records and threats live.
type StorageConfig struct {
	Driver      string
	ThreatStore string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type ThreatConfig struct {
	LargeExpenseThreshold float64
	SimulatedLatency      time.Duration
}

// SampleConfig drives the generated chain log used by the in-memory store and cmd/seed.
type SampleConfig struct {
	Size int
	Seed int64
}

type ForecastConfig struct {
	Provider string
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too (Docker/K8s).
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout := getEnvInt("SERVER_READ_TIMEOUT", 30)
	writeTimeout := getEnvInt("SERVER_WRITE_TIMEOUT", 30)
	latencyMs := getEnvInt("THREAT_SIMULATED_LATENCY_MS", 0)

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Storage: StorageConfig{
			Driver:      getEnv("STORAGE_DRIVER", StorageMemory),
			ThreatStore: getEnv("THREAT_STORE", ThreatStoreMemory),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "fisk_dimension"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Threat: ThreatConfig{
			LargeExpenseThreshold: getEnvFloat("THREAT_LARGE_EXPENSE_THRESHOLD", 10000),
			SimulatedLatency:      time.Duration(latencyMs) * time.Millisecond,
		},
		Sample: SampleConfig{
			Size: getEnvInt("SAMPLE_SIZE", 250),
			Seed: int64(getEnvInt("SAMPLE_SEED", 42)),
		},
		Forecast: ForecastConfig{
			Provider: getEnv("FORECAST_PROVIDER", ForecastStub),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "false") == "true",
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	switch c.Storage.ThreatStore {
	case ThreatStoreMemory, ThreatStoreRedis:
	default:
		return fmt.Errorf("unknown THREAT_STORE %q", c.Storage.ThreatStore)
	}
	switch c.Forecast.Provider {
	case ForecastStub, ForecastGigaChat, ForecastGemini:
	default:
		return fmt.Errorf("unknown FORECAST_PROVIDER %q", c.Forecast.Provider)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}
