package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	S3       S3Config
	Auth     AuthConfig
}

type ServerConfig struct {
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DATABASE_HOST" required:"true"`
	Port     int    `envconfig:"DATABASE_PORT" default:"5432"`
	User     string `envconfig:"DATABASE_USER" required:"true"`
	Password string `envconfig:"DATABASE_PASSWORD" required:"true"`
	DBName   string `envconfig:"DATABASE_DBNAME" required:"true"`
	PoolSize int    `envconfig:"DATABASE_POOL_SIZE" default:"10"`
	SSLMode  string `envconfig:"DATABASE_SSLMODE" default:"require"`
	CAFile   string `envconfig:"DATABASE_CAFILE"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" required:"true"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT" required:"true"`
	AccessKeyID     string `envconfig:"S3_ACCESSKEYID" required:"true"`
	SecretAccessKey string `envconfig:"S3_SECRETACCESSKEY" required:"true"`
	BucketName      string `envconfig:"S3_BUCKETNAME" required:"true"`
	Region          string `envconfig:"S3_REGION" required:"true"`
}

type AuthConfig struct {
	JWTSecret  string        `envconfig:"AUTH_JWT_SECRET" required:"true"`
	TokenTTL   time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"30m"`
	BcryptCost int           `envconfig:"AUTH_BCRYPT_COST" default:"10"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Host: %s, Port: %d, User: %s, Password: ***, DBName: %s, PoolSize: %d, SSLMode: %s}",
		c.Host, c.Port, c.User, c.DBName, c.PoolSize, c.SSLMode)
}

func (c RedisConfig) String() string {
	return fmt.Sprintf("RedisConfig{Host: %s, Port: %d, Password: ***, DB: %d}",
		c.Host, c.Port, c.DB)
}

func (c S3Config) String() string {
	return fmt.Sprintf("S3Config{Endpoint: %s, AccessKeyID: %s, SecretAccessKey: ***, BucketName: %s, Region: %s}",
		c.Endpoint, c.AccessKeyID, c.BucketName, c.Region)
}

func (c AuthConfig) String() string {
	return fmt.Sprintf("AuthConfig{JWTSecret: ***, TokenTTL: %s, BcryptCost: %d}",
		c.TokenTTL, c.BcryptCost)
}
