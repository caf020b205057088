package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppURL                 string
	AppName                string
	AppVersion             string
	AppEnv                 string
	Location               *time.Location
	DatabaseDSN            string
	RateLimit              int
	RedisAddr              string
	SessionDriver          string
	SessionCookie          string
	SessionTTL             time.Duration
	SessionRememberTTL     time.Duration
	SessionSecureCookie    bool
	CSRFEnabled            bool
	CORSAllowedOrigins     []string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	tz := getEnv("APP_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("invalid APP_TIMEZONE %q: %v", tz, err)
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		AppName:                getEnv("APP_NAME", "TaskForge API"),
		AppVersion:             getEnv("APP_VERSION", "1.0.0"),
		AppEnv:                 getEnv("APP_ENV", "production"),
		Location:               loc,
		DatabaseDSN:            getEnv("DATABASE_DSN", "taskforge.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		SessionDriver:          getEnv("SESSION_DRIVER", "redis"),
		SessionCookie:          getEnv("SESSION_COOKIE", "taskforge_session"),
		SessionTTL:             time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
		SessionRememberTTL:     time.Duration(getEnvAsInt("SESSION_REMEMBER_TTL_MINUTES", 43200)) * time.Minute,
		SessionSecureCookie:    getEnvAsBool("SESSION_SECURE_COOKIE", false),
		CSRFEnabled:            getEnvAsBool("CSRF_ENABLED", true),
		CORSAllowedOrigins:     getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.SessionDriver != "redis" && cfg.SessionDriver != "memory" {
		log.Fatal("SESSION_DRIVER must be either redis or memory")
	}
	if cfg.SessionCookie == "" {
		log.Fatal("SESSION_COOKIE must not be empty")
	}
	if cfg.SessionTTL <= 0 || cfg.SessionRememberTTL <= 0 {
		log.Fatal("SESSION_TTL_MINUTES and SESSION_REMEMBER_TTL_MINUTES must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		log.Fatal("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}

func getEnvAsList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
