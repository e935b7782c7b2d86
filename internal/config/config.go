package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	// Backend (внешний коллаборатор с данными камер и тикетов)
	BackendBaseURL string        `env:"BACKEND_BASE_URL"`
	QueryTimeout   time.Duration `env:"QUERY_TIMEOUT" envDefault:"10s"`

	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Точка по умолчанию, если геолокация недоступна
	DefaultLatitude  float64 `env:"DEFAULT_LATITUDE" envDefault:"53.54"`
	DefaultLongitude float64 `env:"DEFAULT_LONGITUDE" envDefault:"10.0"`

	// Радиус поиска по умолчанию, метры
	DefaultRadiusMeters int `env:"DEFAULT_RADIUS_METERS" envDefault:"1000"`

	// Источник геолокации устройства
	DeviceAgentURL   string        `env:"DEVICE_AGENT_URL"`
	LocationTimeout  time.Duration `env:"LOCATION_TIMEOUT" envDefault:"7s"`
	TrackingInterval time.Duration `env:"TRACKING_INTERVAL" envDefault:"5s"`

	// Уведомления оператору
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL" envDefault:"3s"`

	// Кэш деталей камер
	CameraCacheTTL time.Duration `env:"CAMERA_CACHE_TTL" envDefault:"5m"`

	// Webhook Config (доставка событий триажа внешним системам)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Ключ картографического провайдера. Непрозрачная строка: ядро её не
	// разбирает, а просто отдаёт клиенту как есть.
	MapsAPIKey string `env:"MAPS_API_KEY"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		BackendBaseURL:      os.Getenv("BACKEND_BASE_URL"),
		QueryTimeout:        getEnvAsDuration("QUERY_TIMEOUT", 10*time.Second),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		DefaultLatitude:     getEnvAsFloat("DEFAULT_LATITUDE", 53.54),
		DefaultLongitude:    getEnvAsFloat("DEFAULT_LONGITUDE", 10.0),
		DefaultRadiusMeters: getEnvAsInt("DEFAULT_RADIUS_METERS", 1000),
		DeviceAgentURL:      os.Getenv("DEVICE_AGENT_URL"),
		LocationTimeout:     getEnvAsDuration("LOCATION_TIMEOUT", 7*time.Second),
		TrackingInterval:    getEnvAsDuration("TRACKING_INTERVAL", 5*time.Second),
		NotificationTTL:     getEnvAsDuration("NOTIFICATION_TTL", 3*time.Second),
		CameraCacheTTL:      getEnvAsDuration("CAMERA_CACHE_TTL", 5*time.Minute),
		WebhookURL:          os.Getenv("WEBHOOK_URL"),
		WebhookSecret:       os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:      getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:   getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:    getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		MapsAPIKey:          os.Getenv("MAPS_API_KEY"),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.BackendBaseURL == "" {
		return nil, fmt.Errorf("BACKEND_BASE_URL environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
