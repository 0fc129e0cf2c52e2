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

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/property-booking/internal/audit"
	"github.com/BruksfildServices01/property-booking/internal/auth"
	"github.com/BruksfildServices01/property-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/property-booking/internal/db"
	domainBooking "github.com/BruksfildServices01/property-booking/internal/domain/booking"
	"github.com/BruksfildServices01/property-booking/internal/infra/cache"
	"github.com/BruksfildServices01/property-booking/internal/infra/imaging"
	"github.com/BruksfildServices01/property-booking/internal/infra/storage"
	"github.com/BruksfildServices01/property-booking/internal/logging"
	"github.com/BruksfildServices01/property-booking/internal/mail"
	"github.com/BruksfildServices01/property-booking/internal/middleware"
	"github.com/BruksfildServices01/property-booking/internal/mq"
	"github.com/BruksfildServices01/property-booking/internal/routes"
	"github.com/BruksfildServices01/property-booking/internal/validators"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			logger.Warn("close database", slog.Any("error", err))
		}
	}()

	rdb, err := cache.NewRedisClient(ctx, cfg.RedisConfig)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// A nil interface keeps booking admission from publishing.
	var events domainBooking.EventPublisher
	if cfg.RabbitConfig.URL != "" {
		pub, err := mq.NewPublisher(cfg.RabbitConfig.URL, cfg.BookingExchange)
		if err != nil {
			return err
		}
		defer pub.Close()
		events = pub
	} else {
		logger.Info("RABBIT_URL not set, booking events disabled")
	}

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)
	defer auditDispatcher.Close()

	mailQueue := mail.NewRedisQueue(rdb, cfg.QueueKey)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validators.Register(v); err != nil {
			return err
		}
	}

	// ======================================================
	// 📬 MAIL WORKER
	// ======================================================
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		mail.NewWorker(mailQueue, mail.LogSender{Logger: logger}, logger).Run(workerCtx)
	}()
	defer func() {
		cancelWorker()
		<-workerDone
	}()

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		Config:      cfg,
		Tokens:      auth.NewJWT(cfg.JWTSecret, cfg.JWTTTL),
		ResetTokens: cache.NewResetTokenStore(rdb),
		MailQueue:   mailQueue,
		Audit:       auditDispatcher,
		AuditLogger: auditLogger,
		Storage:     storage.NewS3Storage(cfg.S3Config),
		Encoder:     imaging.NewWebPEncoder(),
		Events:      events,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", slog.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
