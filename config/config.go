package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// RabbitURL empty disables the reservation consumer and alert publisher.
	RabbitURL string

	TwoSeatStock int
	OneSeatStock int

	// RefreshInterval 0 disables the scheduled plan refresh.
	RefreshInterval time.Duration

	AuthPassword     string
	AuthPasswordHash string
	JWTSecret        string
	JWTTTL           time.Duration

	// S3Endpoint empty disables plan archiving.
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	LogLevel  string
	LogFormat string
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8083"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "fleet_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RabbitURL: getEnv("RABBITMQ_URL", ""),

		TwoSeatStock: getEnvInt("TWO_SEAT_STOCK", 3),
		OneSeatStock: getEnvInt("ONE_SEAT_STOCK", 3),

		RefreshInterval: getEnvDuration("REFRESH_INTERVAL", time.Minute),

		AuthPassword:     getEnv("AUTH_PASSWORD", ""),
		AuthPasswordHash: getEnv("AUTH_PASSWORD_HASH", ""),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		JWTTTL:           getEnvDuration("JWT_TTL", 12*time.Hour),

		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Bucket:    getEnv("S3_BUCKET", "fleet-plans"),
		S3UseSSL:    getEnvBool("S3_USE_SSL", false),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
