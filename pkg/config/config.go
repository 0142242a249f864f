package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	PostgresHost string
	PostgresPort int
	PostgresUser string
	PostgresPass string
	PostgresDB   string
	PostgresSSL  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Comma-separated broker list; empty disables event publishing.
	KafkaBrokers    string
	OrderEventTopic string
}

func Load() Config {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		PostgresHost: getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort: getEnvInt("POSTGRES_PORT", 5432),
		PostgresUser: getEnv("POSTGRES_USER", "shop"),
		PostgresPass: getEnv("POSTGRES_PASSWORD", "shoppassword"),
		PostgresDB:   getEnv("POSTGRES_DB", "shop_db"),
		PostgresSSL:  getEnv("POSTGRES_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		KafkaBrokers:    getEnv("KAFKA_BROKERS", ""),
		OrderEventTopic: getEnv("ORDER_EVENT_TOPIC", "shop.order.placed"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
