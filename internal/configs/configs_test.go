package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.AppURL != "127.0.0.1:8080" {
		t.Errorf("unexpected AppURL %q", cfg.AppURL)
	}
	if cfg.DBDriver != DriverSQLite || cfg.DatabaseDSN != "tasks.db" {
		t.Errorf("unexpected database config %q %q", cfg.DBDriver, cfg.DatabaseDSN)
	}
	if cfg.RateLimit != 120 || cfg.TagCacheTTLSeconds != 60 || cfg.ShutdownTimeoutSeconds != 20 {
		t.Errorf("unexpected numeric defaults %+v", cfg)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("expected redis disabled by default, got %q", cfg.RedisAddr)
	}
	if cfg.APIBaseURL != "http://127.0.0.1:8080/api" {
		t.Errorf("unexpected APIBaseURL %q", cfg.APIBaseURL)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_HOST", "0.0.0.0")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")
	t.Setenv("API_BASE_URL", "http://example.test/api/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.AppURL != "0.0.0.0:9000" {
		t.Errorf("unexpected AppURL %q", cfg.AppURL)
	}
	if cfg.DBDriver != DriverPostgres {
		t.Errorf("expected driver to be normalized, got %q", cfg.DBDriver)
	}
	if cfg.RateLimit != 10 {
		t.Errorf("unexpected rate limit %d", cfg.RateLimit)
	}
	if cfg.APIBaseURL != "http://example.test/api" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}

	dsn := cfg.PostgresDSN()
	if !strings.Contains(dsn, "host=db") || !strings.Contains(dsn, "port=6543") || !strings.Contains(dsn, "TimeZone=UTC") {
		t.Errorf("unexpected DSN %q", dsn)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"unknown driver":  {"DB_DRIVER", "mysql"},
		"zero rate limit": {"RATE_LIMIT_PER_MINUTE", "0"},
		"negative ttl":    {"TAG_CACHE_TTL_SECONDS", "-1"},
		"zero shutdown":   {"SHUTDOWN_TIMEOUT_SECONDS", "0"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", kv[0], kv[1])
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger(Config{LogLevel: "verbose"}); err == nil {
		t.Error("expected error for unknown level")
	}

	logger, err := NewLogger(Config{LogLevel: "debug", LogFile: filepath.Join(t.TempDir(), "app.log")})
	if err != nil {
		t.Fatalf("NewLogger returned error: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()
}

func TestNewDatabaseClient_SQLite(t *testing.T) {
	db, err := NewDatabaseClient(Config{DBDriver: DriverSQLite, DatabaseDSN: filepath.Join(t.TempDir(), "tasks.db")})
	if err != nil {
		t.Fatalf("NewDatabaseClient returned error: %v", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if !db.Migrator().HasTable("tasks") {
		t.Error("expected tasks table to be migrated")
	}
}
