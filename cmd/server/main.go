package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"negociosHorarios/internal/config"
	"negociosHorarios/internal/modules/hours/application/handler"
	"negociosHorarios/internal/modules/hours/application/port"
	"negociosHorarios/internal/modules/hours/application/usecase"
	"negociosHorarios/internal/modules/hours/domain"
	hoursinfra "negociosHorarios/internal/modules/hours/infrastructure"
	transport "negociosHorarios/internal/modules/hours/interface"
	"negociosHorarios/internal/modules/realtime/infrastructure"
	"negociosHorarios/internal/platform/broker"
	"negociosHorarios/internal/platform/kv"
	"negociosHorarios/internal/shared/auth"
	"negociosHorarios/internal/shared/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env lets local runs override configuration without exporting variables.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	serverLog := logging.With("server")
	serverLog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	serverLog.Info("kafka config resolved", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("group", cfg.Kafka.GroupID), slog.String("inbound", cfg.Kafka.InboundTopic), slog.String("outbound", cfg.Kafka.OutboundTopic))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	kvClient, err := openStore(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("open schedule store: %w", err)
	}
	defer kvClient.Close()
	store := hoursinfra.NewRedisScheduleStore(kvClient, cfg.Redis.KeyPrefix)

	validator, err := auth.NewJWTValidator(cfg.Security.JWTSecret, cfg.Security.JWTPublicKey)
	if err != nil {
		return fmt.Errorf("jwt validator: %w", err)
	}

	hub := infrastructure.NewHub()
	locale := domain.LocaleByName(cfg.Badge.Locale)

	var publisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.OutboundTopic != "" {
		writer := broker.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.OutboundTopic)
		defer writer.Close()
		publisher = hoursinfra.NewKafkaEventPublisher(writer)
	} else {
		serverLog.Warn("kafka publisher disabled")
	}

	hoursUC := usecase.NewHoursUseCase(store, publisher, hub, locale)
	refresher := usecase.NewBadgeRefresher(hoursUC, hub, hub, cfg.Badge.RefreshInterval)
	go refresher.Run(ctx)

	registry := infrastructure.NewHandlerRegistry()
	registry.Register(handler.NewScheduleChangedHandler(cfg.Kafka.InboundTopic, hoursUC))
	broker.StartKafkaConsumers(ctx, registry, cfg.Kafka.Brokers, cfg.Kafka.GroupID)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.Validator = transport.NewRequestValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	transport.NewHoursHandler(hoursUC).Register(e, transport.RequireAuth(validator))
	e.GET("/ws/hours/:id", transport.NewStatusWebsocketHandler(hub, hoursUC))
	e.GET("/healthz", transport.NewHealthHandler(hub))

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-stop:
		serverLog.Info("shutting down")
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		serverLog.Warn("http shutdown", slog.Any("error", err))
	}
	return nil
}

func openStore(ctx context.Context, cfg config.RedisConfig) (kv.Client, error) {
	if cfg.Addr == "" {
		slog.Warn("REDIS_ADDR not set; listing hours kept in memory")
		return kv.NewMemoryClient(), nil
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	client, err := kv.NewRedisClient(pingCtx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		return nil, err
	}
	slog.Info("redis connected", slog.String("addr", cfg.Addr), slog.Int("db", cfg.DB))
	return client, nil
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		Service:   "negocios-horarios",
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
