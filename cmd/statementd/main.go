package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"core-banking-statements/internal/config"
	"core-banking-statements/internal/database"
	"core-banking-statements/internal/handlers"
	"core-banking-statements/internal/middleware"
	"core-banking-statements/internal/repositories"
	"core-banking-statements/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("statementd exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	if err := migrate(ctx, db); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewPrometheusMetrics(registry)
	eventLogger := services.NewStatementEventLogger(logger)
	timeout := cfg.Statement.OperationTimeout

	accountRepo := repositories.NewAccountRepository(db.DB)
	clientRepo := repositories.NewClientRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	dailyBalanceRepo := repositories.NewDailyBalanceRepository(db.DB)
	productStatementRepo := repositories.NewProductStatementRepository(db.DB)
	accountStatementRepo := repositories.NewAccountStatementRepository(db.DB)
	resultRepo := repositories.NewStatementResultRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)

	balanceService := services.NewBalanceService(accountRepo, transactionRepo, dailyBalanceRepo, eventLogger, metrics, timeout)
	accountService := services.NewAccountService(accountRepo, eventLogger, logger, timeout)
	auditService := services.NewAuditService(auditRepo, logger, timeout)
	lifecycle := services.NewStatementLifecycleService(productStatementRepo, accountStatementRepo, accountRepo,
		eventLogger, cfg.Statement.ProductStatementCacheTTL, timeout)
	builder := services.NewStatementBuilder(services.NewStatementStrategies(), cfg.Statement.OnUsPaymentTypePrefix)
	generator := services.NewStatementGenerator(accountStatementRepo, resultRepo, accountRepo, clientRepo, transactionRepo,
		balanceService, builder, eventLogger, metrics, services.GeneratorConfig{
			ResultPathRoot:        cfg.Statement.ResultPathRoot,
			OperationTimeout:      timeout,
			DisposalSettlementLag: cfg.Statement.DisposalSettlementLag,
		})

	store, closeStore, err := newResultStore(ctx, cfg.Publishing, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	notifier := newResultNotifier(cfg.Publishing, logger)
	defer notifier.Close()

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.Publishing.NotifierFailureLimit,
		ResetTimeout:    cfg.Publishing.NotifierResetTimeout,
		HalfOpenMaxSucc: 1,
	})
	publisher := services.NewResultPublisher(resultRepo, store, notifier, breaker, eventLogger, metrics, timeout)

	jobs := services.NewJobRunner(accountRepo, accountStatementRepo, balanceService, generator, eventLogger, metrics, logger,
		services.JobConfig{
			BatchSize:        cfg.Statement.BatchSize,
			DeleteSuperseded: cfg.Statement.DeleteSupersededResults,
		})
	scheduler := services.NewScheduler(jobs, logger.With("component", "scheduler"), services.SchedulerConfig{
		BalanceSnapshotSchedule: cfg.Statement.BalanceSnapshotSchedule,
		GenerationSchedule:      cfg.Statement.GenerationSchedule,
		AuditPurgeSchedule:      cfg.Statement.AuditPurgeSchedule,
		AuditRetention:          cfg.Statement.AuditRetention,
		RunTimeout:              time.Hour,
	}).WithAuditPurge(auditService)
	if err := scheduler.Start(); err != nil {
		return err
	}

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2)
	go rateLimiter.Cleanup(ctx)

	e := newServer(cfg, metrics, rateLimiter)

	h := routeHandlers{
		statements:        handlers.NewStatementHandler(generator, publisher, cfg.Statement.DeleteSupersededResults),
		accountStatements: handlers.NewAccountStatementHandler(lifecycle),
		accounts:          handlers.NewAccountHandler(balanceService, accountService),
		health:            handlers.NewHealthCheckHandler(db.DB),
		docs:              handlers.NewDocsHandler(),
		auditLogs:         handlers.NewAuditHandler(auditService),
		audit:             auditService,
		metrics:           echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})),
	}
	if cfg.IsDevelopment() {
		seeder := services.NewLedgerSeeder(accountRepo, transactionRepo, cfg.Statement.OnUsPaymentTypePrefix,
			uint64(time.Now().UnixNano()), logger)
		h.dev = handlers.NewDevHandler(seeder)
	}
	registerRoutes(e, h, services.NewTokenService(&cfg.JWT))

	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("http server listening", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			logger.Error("http server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}

	select {
	case <-scheduler.Stop().Done():
		logger.Info("scheduler stopped")
	case <-shutdownCtx.Done():
		logger.Warn("scheduled jobs still running at shutdown")
	}

	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts)).With("service", "statementd")
}

func migrate(ctx context.Context, db *database.DB) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}

	runner := database.NewMigrationRunner(sqlDB)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("wait for database: %w", err)
	}
	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return runner.LoadSeeds()
}

// newResultStore falls back to a no-op store when no bucket is configured.
func newResultStore(ctx context.Context, cfg config.PublishingConfig, logger *slog.Logger) (services.ResultStore, func(), error) {
	if cfg.GCSBucket == "" {
		logger.Warn("GCS bucket not configured, published content is kept in the database only")
		return services.NoopResultStore{}, func() {}, nil
	}

	store, err := services.NewGCSResultStore(ctx, cfg.GCSBucket, cfg.GCSCredentialsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("create result store: %w", err)
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close result store", "error", err)
		}
	}, nil
}

// newResultNotifier degrades to a no-op notifier when the broker is
// unreachable. Notifications are best effort.
func newResultNotifier(cfg config.PublishingConfig, logger *slog.Logger) services.ResultNotifier {
	if cfg.AMQPURL == "" {
		logger.Warn("AMQP URL not configured, result notifications disabled")
		return services.NoopResultNotifier{}
	}

	notifier, err := services.NewAMQPResultNotifier(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		logger.Warn("AMQP broker unavailable, result notifications disabled", "error", err)
		return services.NoopResultNotifier{}
	}
	return notifier
}

func newServer(cfg *config.Config, metrics services.MetricsRecorderInterface, rateLimiter *middleware.RateLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler(metrics)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(metrics))
	e.Use(requestLogger())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("1M"))
	e.Use(rateLimiter.Middleware())

	return e
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health" || c.Path() == "/metrics"
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.Log(c.Request().Context(), level, "request",
				"trace_id", middleware.GetTraceID(c),
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"remote_ip", v.RemoteIP,
			)
			return nil
		},
	})
}
