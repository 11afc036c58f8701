package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config aggregates everything the API binary needs from the environment.
type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Lusha    LushaConfig
	Redis    RedisConfig
	RabbitMQ RabbitMQConfig
	Auth     AuthConfig
	Mail     MailConfig
}

type HTTPConfig struct {
	Port           int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	URL string
}

// LushaConfig is the explicit vendor client configuration. The client never
// reads the environment on its own.
type LushaConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type RedisConfig struct {
	URL string
}

type RabbitMQConfig struct {
	User string
	Pass string
	Host string
	Port string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type MailConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

const (
	defaultPort         = 5000
	defaultLushaBaseURL = "https://api.lusha.com"
	defaultLushaTimeout = 10 * time.Second
	defaultTokenTTL     = 7 * 24 * time.Hour
	defaultMailPort     = 587
)

// Load reads configuration from environment variables, applying defaults.
// Call godotenv.Load before this in main.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			AllowedOrigins: []string{valueOrDefault("ALLOWED_ORIGIN", "http://localhost:3000"), "*"},
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Lusha: LushaConfig{
			APIKey:  os.Getenv("LUSHA_API_KEY"),
			BaseURL: valueOrDefault("LUSHA_BASE_URL", defaultLushaBaseURL),
			Timeout: defaultLushaTimeout,
		},
		Redis: RedisConfig{
			URL: valueOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		},
		RabbitMQ: RabbitMQConfig{
			User: valueOrDefault("RABBITMQ_USER", "guest"),
			Pass: valueOrDefault("RABBITMQ_PASS", "guest"),
			Host: valueOrDefault("RABBITMQ_HOST", "localhost"),
			Port: valueOrDefault("RABBITMQ_PORT", "5672"),
		},
		Auth: AuthConfig{
			JWTSecret: valueOrDefault("JWT_SECRET", "your_secret_key"),
			TokenTTL:  defaultTokenTTL,
		},
		Mail: MailConfig{
			Host: os.Getenv("MAIL_HOST"),
			Port: parseIntWithDefault("MAIL_PORT", defaultMailPort),
			User: os.Getenv("MAIL_USER"),
			Pass: os.Getenv("MAIL_PASS"),
			From: valueOrDefault("MAIL_FROM", "no-reply@prospectfinder.app"),
		},
	}

	port, err := parsePort("PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	if v := os.Getenv("LUSHA_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LUSHA_TIMEOUT: %w", err)
		}
		cfg.Lusha.Timeout = d
	}

	if cfg.Database.URL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}
