package postgres

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultPoolSize   = 10
	connectTimeout    = 10 * time.Second
	maxConnLifetime   = time.Hour
	maxConnIdleTime   = 30 * time.Minute
	healthCheckPeriod = time.Minute
)

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	PoolSize int
	SSLMode  string
	CAFile   string
}

// NewPostgresConnection は設定からコネクションプールを生成し、疎通を確認します
func NewPostgresConnection(cfg PostgresConfig) (*pgxpool.Pool, error) {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("ポート番号が不正です: %d", cfg.Port)
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = defaultPoolSize
	}

	poolConfig, err := pgxpool.ParseConfig("")
	if err != nil {
		return nil, fmt.Errorf("プール設定の初期化に失敗しました: %w", err)
	}

	poolConfig.ConnConfig.Host = cfg.Host
	poolConfig.ConnConfig.Port = uint16(cfg.Port)
	poolConfig.ConnConfig.User = cfg.User
	poolConfig.ConnConfig.Password = cfg.Password
	poolConfig.ConnConfig.Database = cfg.Database
	poolConfig.MaxConns = int32(cfg.PoolSize)
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime
	poolConfig.HealthCheckPeriod = healthCheckPeriod

	tlsConfig, err := buildTLSConfig(cfg)
	if err != nil {
		return nil, err
	}
	poolConfig.ConnConfig.TLSConfig = tlsConfig

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("コネクションプールの生成に失敗しました: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("データベースへの疎通確認に失敗しました: %w", err)
	}

	return pool, nil
}

// buildTLSConfig はsslModeに応じたTLS設定を返します。空文字はrequire扱いです
func buildTLSConfig(cfg PostgresConfig) (*tls.Config, error) {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	switch sslMode {
	case "disable":
		return nil, nil
	case "require":
		return &tls.Config{InsecureSkipVerify: true}, nil
	case "verify-ca", "verify-full":
		caPEM, err := os.ReadFile(cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("CA証明書の読み込みに失敗しました: %w", err)
		}
		certPool := x509.NewCertPool()
		if !certPool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("CA証明書のパースに失敗しました")
		}
		tlsConfig := &tls.Config{RootCAs: certPool}
		if sslMode == "verify-full" {
			tlsConfig.ServerName = cfg.Host
		}
		return tlsConfig, nil
	default:
		return nil, fmt.Errorf("未知のsslModeです: %s", sslMode)
	}
}
