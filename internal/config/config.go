package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"onebiz-payroll/internal/shared/connection"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database connection.DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Payroll  PayrollConfig
	RBAC     RBACConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Addr string
}

type KafkaConfig struct {
	Broker             string
	ConsumerGroup      string
	OutboxPollInterval time.Duration
	OutboxBatchSize    int
}

type JWTConfig struct {
	Secret string
}

// PayrollConfig tunes the calculation engine's I/O behaviour.
type PayrollConfig struct {
	ReadTimeout     time.Duration
	BulkConcurrency int
	Location        *time.Location
	ConfigCacheTTL  time.Duration
}

type RBACConfig struct {
	ModelPath string
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: connection.DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "onebiz"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			TimeZone: "UTC",
		},
		Redis: RedisConfig{Addr: getEnv("REDIS_ADDR", "localhost:6379")},
		Kafka: KafkaConfig{
			Broker:        os.Getenv("KAFKA_BROKER"),
			ConsumerGroup: getEnv("KAFKA_CONSUMER_GROUP", "onebiz-payroll-bulk"),
		},
		JWT:  JWTConfig{Secret: os.Getenv("JWT_SECRET")},
		RBAC: RBACConfig{ModelPath: os.Getenv("RBAC_MODEL_PATH")},
	}

	readTimeout, err := getDuration("PAYROLL_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getDuration("SALARY_CONFIG_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	concurrency, err := getInt("PAYROLL_BULK_CONCURRENCY", 8)
	if err != nil {
		return nil, err
	}
	if concurrency < 1 {
		return nil, fmt.Errorf("invalid PAYROLL_BULK_CONCURRENCY: must be at least 1, got %d", concurrency)
	}
	loc, err := time.LoadLocation(getEnv("PAYROLL_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_TIMEZONE: %w", err)
	}

	pollInterval, err := getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second)
	if err != nil {
		return nil, err
	}
	batchSize, err := getInt("OUTBOX_BATCH_SIZE", 50)
	if err != nil {
		return nil, err
	}
	cfg.Kafka.OutboxPollInterval = pollInterval
	cfg.Kafka.OutboxBatchSize = batchSize

	cfg.Payroll = PayrollConfig{
		ReadTimeout:     readTimeout,
		BulkConcurrency: concurrency,
		Location:        loc,
		ConfigCacheTTL:  cacheTTL,
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
