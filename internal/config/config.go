package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go-payroll/internal/document"
	"go-payroll/internal/notification"
)

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type Config struct {
	AppEnv             string
	Port               string
	DB                 DBConfig
	RedisAddr          string
	KafkaBroker        string
	JWTSecret          string
	OSS                document.OSSConfig
	SMTP               notification.SMTPConfig
	RBACModelPath      string
	RBACPolicyPath     string
	OutboxPollInterval time.Duration
	ConnectRetries     int
}

// Load reads the process environment. Callers load .env beforehand.
func Load() (Config, error) {
	cfg := Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "3000"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "payroll"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		OSS: document.OSSConfig{
			Endpoint:        os.Getenv("ALI_OSS_ENDPOINT"),
			AccessKeyID:     os.Getenv("ALI_OSS_ACCESS_KEY_ID"),
			AccessKeySecret: os.Getenv("ALI_OSS_ACCESS_KEY_SECRET"),
			SecurityToken:   os.Getenv("ALI_OSS_SECURITY_TOKEN"),
			Bucket:          os.Getenv("ALI_OSS_BUCKET"),
			Prefix:          getEnv("ALI_OSS_PREFIX", "payroll"),
			PublicBaseURL:   os.Getenv("ALI_OSS_PUBLIC_BASE_URL"),
		},
		SMTP: notification.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		},
		RBACModelPath:  os.Getenv("RBAC_MODEL_PATH"),
		RBACPolicyPath: os.Getenv("RBAC_POLICY_PATH"),
	}

	interval, err := getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.OutboxPollInterval = interval

	retries, err := getInt("CONNECT_RETRIES", 5)
	if err != nil {
		return Config{}, err
	}
	cfg.ConnectRetries = retries

	if cfg.JWTSecret == "" && !cfg.IsDevelopment() {
		return Config{}, fmt.Errorf("JWT_SECRET is required when APP_ENV=%s", cfg.AppEnv)
	}
	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "test"
}

// SMTPEnabled reports whether outbound mail can be delivered for real.
func (c Config) SMTPEnabled() bool {
	return c.SMTP.Host != "" && c.SMTP.From != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return v, nil
}
