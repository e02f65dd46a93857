// Package main is the entrypoint for the ExpenseVault API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/expensevault/expensevault/internal/auth"
	"github.com/expensevault/expensevault/internal/cache"
	"github.com/expensevault/expensevault/internal/config"
	"github.com/expensevault/expensevault/internal/handler"
	"github.com/expensevault/expensevault/internal/metrics"
	"github.com/expensevault/expensevault/internal/middleware"
	"github.com/expensevault/expensevault/internal/repository"
	"github.com/expensevault/expensevault/internal/server"
	"github.com/expensevault/expensevault/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	if err := repo.Migrate(ctx); err != nil {
		logger.Error("failed to apply schema", slog.String("error", sanitizeError(err, cfg.DatabaseURL)))
		os.Exit(1)
	}

	cacheClient, err := cache.New(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error(
			"failed to connect to Redis",
			slog.String("error", sanitizeError(err, cfg.RedisURL)),
			slog.String("redis_url", redactURL(cfg.RedisURL)),
		)
		os.Exit(1)
	}
	defer cacheClient.Close()
	logger.Info("connected to Redis")

	metricsRecorder := metrics.NewInMemory()
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(repo, tokenService, metricsRecorder)
	transactionService := service.NewTransactionService(repo, cacheClient, metricsRecorder, logger)
	budgetService := service.NewBudgetService(repo, cacheClient, metricsRecorder, logger)

	healthHandler := handler.NewHealthHandler(repo, cacheClient)
	authHandler := handler.NewAuthHandler(authService, logger)
	transactionHandler := handler.NewTransactionHandler(transactionService, logger)
	budgetHandler := handler.NewBudgetHandler(budgetService, logger)
	reportHandler := handler.NewReportHandler(transactionService, metricsRecorder, logger)
	metricsHandler := handler.NewMetricsHandler(metricsRecorder)

	r := setupRouter(routerDeps{
		health:       healthHandler,
		auth:         authHandler,
		transactions: transactionHandler,
		budgets:      budgetHandler,
		reports:      reportHandler,
		metrics:      metricsHandler,
		tokens:       tokenService,
		cfg:          cfg,
		logger:       logger,
	})

	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type routerDeps struct {
	health       *handler.HealthHandler
	auth         *handler.AuthHandler
	transactions *handler.TransactionHandler
	budgets      *handler.BudgetHandler
	reports      *handler.ReportHandler
	metrics      *handler.MetricsHandler
	tokens       *auth.TokenService
	cfg          *config.Config
	logger       *slog.Logger
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(deps.logger))
	r.Use(middleware.Recoverer(deps.logger))
	r.Use(middleware.Security(middleware.SecurityConfig{
		IsDevelopment:      deps.cfg.IsDevelopment(),
		MaxRequestBodySize: deps.cfg.MaxRequestBodySize,
	}))
	r.Use(middleware.MaxBodySize(deps.cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = deps.cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Health and observability endpoints (no auth required)
	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)
	r.Get("/metrics", deps.metrics.Metrics)

	r.Route("/api", func(r chi.Router) {
		// Public auth endpoints
		r.Post("/signup", deps.auth.Signup)
		r.Post("/login", deps.auth.Login)

		// Protected record endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(deps.tokens, deps.logger))

			r.Route("/expenses", func(r chi.Router) {
				r.Get("/", deps.transactions.List)
				r.Post("/", deps.transactions.Create)
				r.Put("/{id}", deps.transactions.Update)
				r.Delete("/{id}", deps.transactions.Delete)
			})

			r.Route("/budgets", func(r chi.Router) {
				r.Get("/", deps.budgets.List)
				r.Post("/", deps.budgets.Create)
				r.Put("/{id}", deps.budgets.Update)
				r.Delete("/{id}", deps.budgets.Delete)
			})

			r.Get("/reports/summary", deps.reports.Summary)
		})
	})

	// 404 and 405 handlers
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
