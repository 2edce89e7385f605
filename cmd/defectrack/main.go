package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/na2na-p/defectrack/internal/config"
	"github.com/na2na-p/defectrack/internal/domain"
	"github.com/na2na-p/defectrack/internal/handler"
	appMiddleware "github.com/na2na-p/defectrack/internal/handler/middleware"
	"github.com/na2na-p/defectrack/internal/infrastructure"
	"github.com/na2na-p/defectrack/internal/infrastructure/hash"
	"github.com/na2na-p/defectrack/internal/infrastructure/logging"
	"github.com/na2na-p/defectrack/internal/infrastructure/postgres"
	"github.com/na2na-p/defectrack/internal/infrastructure/redis"
	"github.com/na2na-p/defectrack/internal/infrastructure/report"
	"github.com/na2na-p/defectrack/internal/infrastructure/s3"
	"github.com/na2na-p/defectrack/internal/infrastructure/token"
	"github.com/na2na-p/defectrack/internal/usecase"
)

const (
	readTimeout     = 30 * time.Second
	writeTimeout    = 60 * time.Second
	shutdownTimeout = 10 * time.Second
	idleTimeout     = 120 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: logging.MaskSensitiveAttrs,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPostgresConnection(postgres.PostgresConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Database: cfg.Database.DBName,
		PoolSize: cfg.Database.PoolSize,
		SSLMode:  cfg.Database.SSLMode,
		CAFile:   cfg.Database.CAFile,
	})
	if err != nil {
		return err
	}
	defer pool.Close()
	slog.Info("PostgreSQL connection established")

	redisConn, err := redis.NewRedisConnection(redis.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	redisClient := redis.NewRedisClient(redisConn)
	defer func() { _ = redisClient.Close() }()
	slog.Info("Redis connection established")

	s3Conn, err := s3.NewS3Connection(s3.S3Config{
		Endpoint:        cfg.S3.Endpoint,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
		Region:          cfg.S3.Region,
	})
	if err != nil {
		return err
	}
	s3Client := s3.NewS3Client(s3Conn, cfg.S3.BucketName)
	slog.Info("S3 connection established")

	userRepo := infrastructure.NewCachingUserRepository(
		postgres.NewUserRepository(pool),
		redisClient,
		redis.NewCacheKeyGenerator(),
		redis.NewCacheConfig(),
	)
	projectRepo := postgres.NewProjectRepository(pool)
	defectRepo := postgres.NewDefectRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	attachmentRepo := postgres.NewAttachmentRepository(pool)

	hasher := hash.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokenProvider := token.NewJWTProvider(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	storageErrorChecker := s3.NewErrorChecker()
	storageKeyGenerator := s3.NewStorageKeyGenerator()
	policy := domain.NewPolicyEvaluator()

	authUC := usecase.NewAuthUseCase(userRepo, hasher, tokenProvider)
	userUC := usecase.NewUserUseCase(userRepo, hasher, policy)
	projectUC := usecase.NewProjectUseCase(projectRepo, defectRepo, userRepo, policy)
	defectUC := usecase.NewDefectUseCase(defectRepo, projectRepo, commentRepo, attachmentRepo, s3Client, storageErrorChecker, policy)
	commentUC := usecase.NewCommentUseCase(commentRepo, defectRepo, policy)
	attachmentUC := usecase.NewAttachmentUseCase(attachmentRepo, defectRepo, s3Client, storageErrorChecker, storageKeyGenerator, policy)
	reportUC := usecase.NewReportUseCase(defectRepo, report.NewCSVWriter(), report.NewXLSXWriter(), policy)

	readinessUC := usecase.NewReadinessUseCase(
		postgres.NewPostgresHealthChecker(pool),
		redis.NewRedisHealthChecker(redisClient),
		s3.NewS3HealthChecker(s3Client),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = appMiddleware.CustomHTTPErrorHandler

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "REQUEST", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "REQUEST", attrs...)
			}
			return nil
		},
	}))

	handler.RegisterRoutes(e, handler.Handlers{
		Auth:       handler.NewAuthHandler(authUC),
		User:       handler.NewUserHandler(userUC),
		Project:    handler.NewProjectHandler(projectUC),
		Defect:     handler.NewDefectHandler(defectUC),
		Comment:    handler.NewCommentHandler(commentUC),
		Attachment: handler.NewAttachmentHandler(attachmentUC),
		Report:     handler.NewReportHandler(reportUC),
		Readyz:     handler.NewReadyzHandler(readinessUC),
	}, appMiddleware.RequireActor(authUC))

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("received shutdown signal")
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	if err := e.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}
