package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	PromoAPIURL     string
	SupportAPIURL   string
	RemoteTimeout   time.Duration
	DatabaseURL     string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSSLMode       string
	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	JWTSecret       string
	AdminSessionTTL time.Duration
	AdminLogin      string
	AdminPassword   string
	SessionIdleTTL  time.Duration
	OriginURL       string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8082")),
		PromoAPIURL:     getEnv("PROMO_API_URL", "http://localhost:8082/api/promo"),
		SupportAPIURL:   getEnv("SUPPORT_API_URL", "http://localhost:8082/api/support"),
		RemoteTimeout:   getDuration("REMOTE_TIMEOUT", 10*time.Second),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		DBHost:          getEnv("DB_HOST", ""),
		DBPort:          getEnv("DB_PORT", "5432"),
		DBUser:          getEnv("DB_USER", "postgres"),
		DBPassword:      getEnv("DB_PASSWORD", ""),
		DBName:          getEnv("DB_NAME", "fartburger"),
		DBSSLMode:       getEnv("DB_SSLMODE", "disable"),
		RedisURL:        getEnv("REDIS_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		JWTSecret:       getEnv("JWT_SECRET", "secret"),
		AdminSessionTTL: getDuration("ADMIN_SESSION_TTL", 12*time.Hour),
		AdminLogin:      getEnv("ADMIN_LOGIN", "XeX"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "18181818"),
		SessionIdleTTL:  getDuration("SESSION_IDLE_TTL", 2*time.Hour),
		OriginURL:       getEnv("ORIGIN_URL", ""),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
