package config_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/na2na-p/defectrack/internal/config"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_HOST", "localhost")
	t.Setenv("DATABASE_USER", "defectrack")
	t.Setenv("DATABASE_PASSWORD", "db-password")
	t.Setenv("DATABASE_DBNAME", "defectrack")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("S3_ACCESSKEYID", "minio")
	t.Setenv("S3_SECRETACCESSKEY", "minio-secret")
	t.Setenv("S3_BUCKETNAME", "attachments")
	t.Setenv("S3_REGION", "us-east-1")
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
}

func TestLoad(t *testing.T) {
	t.Run("正常系: 必須項目のみでデフォルト値が適用される", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("want no error, but got %v", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %v, want 8080", cfg.Server.Port)
		}
		if cfg.Database.Port != 5432 {
			t.Errorf("Database.Port = %v, want 5432", cfg.Database.Port)
		}
		if cfg.Database.PoolSize != 10 {
			t.Errorf("Database.PoolSize = %v, want 10", cfg.Database.PoolSize)
		}
		if cfg.Database.SSLMode != "require" {
			t.Errorf("Database.SSLMode = %v, want require", cfg.Database.SSLMode)
		}
		if cfg.Auth.TokenTTL != 30*time.Minute {
			t.Errorf("Auth.TokenTTL = %v, want 30m", cfg.Auth.TokenTTL)
		}
		if cfg.Auth.BcryptCost != 10 {
			t.Errorf("Auth.BcryptCost = %v, want 10", cfg.Auth.BcryptCost)
		}
	})

	t.Run("正常系: 環境変数がデフォルト値を上書きする", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("AUTH_TOKEN_TTL", "1h")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("want no error, but got %v", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %v, want 9090", cfg.Server.Port)
		}
		if cfg.Auth.TokenTTL != time.Hour {
			t.Errorf("Auth.TokenTTL = %v, want 1h", cfg.Auth.TokenTTL)
		}
	})

	t.Run("異常系: 必須項目が欠けている場合はエラー", func(t *testing.T) {
		setRequiredEnv(t)
		// t.Setenv で復元を登録した上で未設定状態を作る
		t.Setenv("AUTH_JWT_SECRET", "placeholder")
		if err := os.Unsetenv("AUTH_JWT_SECRET"); err != nil {
			t.Fatalf("failed to unset env: %v", err)
		}

		if _, err := config.Load(); err == nil {
			t.Error("want error for missing AUTH_JWT_SECRET, but got nil")
		}
	})
}

func TestConfig_String(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("want no error, but got %v", err)
	}

	for name, s := range map[string]string{
		"DatabaseConfig": cfg.Database.String(),
		"RedisConfig":    cfg.Redis.String(),
		"S3Config":       cfg.S3.String(),
		"AuthConfig":     cfg.Auth.String(),
	} {
		if strings.Contains(s, "db-password") || strings.Contains(s, "minio-secret") || strings.Contains(s, "test-secret") {
			t.Errorf("%s.String() leaks a secret: %s", name, s)
		}
	}
}
