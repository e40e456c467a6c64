package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	AppURL                 string
	DBDriver               string
	DatabaseDSN            string
	DBHost                 string
	DBPort                 int
	DBUser                 string
	DBPassword             string
	DBName                 string
	RateLimit              int
	RedisAddr              string
	RedisTagsKey           string
	TagCacheTTLSeconds     int
	CORSOrigin             string
	ShutdownTimeoutSeconds int
	LogLevel               string
	LogFile                string
	APIBaseURL             string
}

func defaults(v *viper.Viper) {
	v.SetDefault("APP_HOST", "127.0.0.1")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "tasks.db")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "todoapp")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 120)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_TAGS_KEY", "todolist:tags")
	v.SetDefault("TAG_CACHE_TTL_SECONDS", 60)
	v.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 20)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("API_BASE_URL", "http://127.0.0.1:8080/api")
}

// Load reads the process environment once. A .env file, if any, must
// already have been loaded into the environment.
func Load() (Config, error) {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", v.GetString("APP_HOST"), v.GetString("APP_PORT")),
		DBDriver:               strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER"))),
		DatabaseDSN:            v.GetString("DATABASE_DSN"),
		DBHost:                 v.GetString("DB_HOST"),
		DBPort:                 v.GetInt("DB_PORT"),
		DBUser:                 v.GetString("DB_USER"),
		DBPassword:             v.GetString("DB_PASSWORD"),
		DBName:                 v.GetString("DB_NAME"),
		RateLimit:              v.GetInt("RATE_LIMIT_PER_MINUTE"),
		RedisAddr:              v.GetString("REDIS_ADDR"),
		RedisTagsKey:           v.GetString("REDIS_TAGS_KEY"),
		TagCacheTTLSeconds:     v.GetInt("TAG_CACHE_TTL_SECONDS"),
		CORSOrigin:             v.GetString("CORS_ORIGIN"),
		ShutdownTimeoutSeconds: v.GetInt("SHUTDOWN_TIMEOUT_SECONDS"),
		LogLevel:               v.GetString("LOG_LEVEL"),
		LogFile:                v.GetString("LOG_FILE"),
		APIBaseURL:             strings.TrimRight(v.GetString("API_BASE_URL"), "/"),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.AppURL == "" || cfg.AppURL == ":" {
		return errors.New("APP_HOST/APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	}
	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DatabaseDSN == "" {
			return errors.New("DATABASE_DSN must not be empty")
		}
	case DriverPostgres:
		if cfg.DBHost == "" || cfg.DBName == "" {
			return errors.New("DB_HOST and DB_NAME must not be empty")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, cfg.DBDriver)
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.TagCacheTTLSeconds < 0 {
		return errors.New("TAG_CACHE_TTL_SECONDS must not be negative")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.APIBaseURL == "" {
		return errors.New("API_BASE_URL must not be empty")
	}
	return nil
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
