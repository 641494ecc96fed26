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

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Salamjean/kksExpress-backend/cmd"
	adapterhttp "github.com/Salamjean/kksExpress-backend/internal/adapters/in/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config := loadConfig(logger)

	gormDB, err := gorm.Open(postgres.Open(config.PostgresDSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root, err := cmd.NewCompositionRoot(ctx, config, gormDB, logger)
	if err != nil {
		logger.Error("failed to build composition root", slog.Any("error", err))
		os.Exit(1)
	}

	server, err := root.CreateHTTPServer()
	if err != nil {
		logger.Error("failed to build http server", slog.Any("error", err))
		os.Exit(1)
	}

	jobManager, err := root.CreateJobManager()
	if err != nil {
		logger.Error("failed to build job manager", slog.Any("error", err))
		os.Exit(1)
	}

	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start background jobs", slog.Any("error", err))
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Validator = adapterhttp.NewRequestValidator()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	go func() {
		if serveErr := e.Start("0.0.0.0:" + config.HTTPPort); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http server stopped", slog.Any("error", serveErr))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down cleanly", slog.Any("error", err))
	}
}

func loadConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file found, relying on process environment")
	}

	return cmd.Config{
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            envOrDefault("DB_PORT", "5432"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         envOrDefault("DB_SSLMODE", "disable"),
		CinetPayAPIKey:    os.Getenv("CINETPAY_API_KEY"),
		CinetPaySiteID:    os.Getenv("CINETPAY_SITE_ID"),
		CinetPayBaseURL:   os.Getenv("CINETPAY_BASE_URL"),
		CinetPayNotifyURL: os.Getenv("CINETPAY_NOTIFY_URL"),
		CinetPayReturnURL: os.Getenv("CINETPAY_RETURN_URL"),
		SESRegion:         os.Getenv("AWS_SES_REGION"),
		SESFromEmail:      os.Getenv("SES_FROM_EMAIL"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
