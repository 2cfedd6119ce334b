package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"news-api/internal/config"
	"news-api/internal/infra/adapter/persistence/postgres"
	"news-api/internal/infra/cache"
	"news-api/internal/infra/db"
	"news-api/internal/infra/search"
	"news-api/internal/infra/worker"
	"news-api/internal/observability/logging"
	"news-api/internal/observability/metrics"
	"news-api/internal/observability/tracing"
	"news-api/internal/resilience/circuitbreaker"
	newsUC "news-api/internal/usecase/news"

	hhttp "news-api/internal/handler/http"
	"news-api/internal/handler/http/middleware"
	hnews "news-api/internal/handler/http/news"
	"news-api/internal/handler/http/requestid"
	hstats "news-api/internal/handler/http/stats"

	_ "news-api/docs" // swagger docs
)

// @title           News API
// @version         1.0
// @description     Read-only REST API over the crawled news index.
// @description     Lists and searches articles in OpenSearch and reports crawl statistics from Postgres.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	loadDotEnv()
	logger := initLogger()

	cfg, err := config.Load(os.Getenv("NEWS_API_CONFIG"))
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing := tracing.InitProvider()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database := initDatabase(ctx, logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	components, err := setupServer(ctx, logger, cfg, database)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}
	defer components.Close(logger)

	if err := runServer(ctx, logger, cfg, components); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// loadDotEnv seeds the environment from .env when the file exists.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", slog.Any("error", err))
	}
}

// initLogger initializes the JSON logger and installs it as the default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// initDatabase opens the pool, waits for Postgres and creates missing tables.
func initDatabase(ctx context.Context, logger *slog.Logger, cfg config.Config) *sql.DB {
	database, err := db.Open(ctx, cfg.Database.URL, db.ConnectionConfigFromEnv())
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.EnsureSchema(ctx, database); err != nil {
		_ = database.Close()
		logger.Error("failed to ensure database schema", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// ServerComponents holds everything runServer starts and stops.
type ServerComponents struct {
	Handler       http.Handler
	SearchLimiter *middleware.RateLimiter
	Schedulers    []*worker.Scheduler
	StatsCache    *cache.StatsCache
}

// Close releases resources that outlive the HTTP server.
func (c *ServerComponents) Close(logger *slog.Logger) {
	if c.StatsCache != nil {
		if err := c.StatsCache.Close(); err != nil {
			logger.Warn("failed to close stats cache", slog.Any("error", err))
		}
	}
}

func setupServer(ctx context.Context, logger *slog.Logger, cfg config.Config, database *sql.DB) (*ServerComponents, error) {
	gateway, err := search.New(cfg.SearchGateway(), logger)
	if err != nil {
		return nil, err
	}
	logger.Info("search gateway configured",
		slog.String("url", cfg.Search.URL),
		slog.String("index", cfg.Search.Index),
		slog.Duration("timeout", cfg.Search.Timeout))

	breaker := circuitbreaker.NewDB(database)
	svc := &newsUC.Service{
		Articles:       gateway,
		CrawlStatsRepo: postgres.NewCrawlStatsRepo(breaker),
		CategoryRepo:   postgres.NewCategoryRepo(breaker),
		DB:             breaker,
		Logger:         logger,
		StartedAt:      time.Now(),
	}

	components := &ServerComponents{}
	if cfg.Cache.RedisURL != "" {
		statsCache, err := cache.NewRedisStatsCache(ctx, cfg.Cache.RedisURL, cfg.Cache.StatsTTL)
		if err != nil {
			logger.Warn("stats cache disabled: redis unavailable", slog.Any("error", err))
		} else {
			svc.Cache = statsCache
			components.StatsCache = statsCache
			logger.Info("stats cache enabled", slog.Duration("ttl", cfg.Cache.StatsTTL))
		}
	} else {
		logger.Info("stats cache disabled: REDIS_URL not set")
	}

	schedulers, err := setupSchedulers(logger, cfg, svc, database)
	if err != nil {
		return nil, err
	}
	components.Schedulers = schedulers

	extractor, err := middleware.NewIPExtractor(cfg.Server.TrustedProxies)
	if err != nil {
		return nil, err
	}
	if len(cfg.Server.TrustedProxies) > 0 {
		logger.Info("rate limiting: trusted proxy mode enabled",
			slog.Int("trusted_proxies_count", len(cfg.Server.TrustedProxies)))
	} else {
		logger.Info("rate limiting: using RemoteAddr (proxy headers ignored)")
	}
	components.SearchLimiter = middleware.NewRateLimiter(cfg.RateLimit.SearchPerSecond, cfg.RateLimit.SearchBurst, extractor)

	mux := setupRoutes(cfg, svc, components.SearchLimiter)
	components.Handler = applyMiddleware(logger, cfg, mux)
	return components, nil
}

// setupSchedulers registers the dashboard refresh and pool gauge jobs.
func setupSchedulers(logger *slog.Logger, cfg config.Config, svc *newsUC.Service, database *sql.DB) ([]*worker.Scheduler, error) {
	workerMetrics := worker.NewWorkerMetrics(prometheus.DefaultRegisterer)

	refreshCfg := worker.DefaultConfig()
	refreshCfg.Schedule = cfg.Cache.RefreshSchedule
	refresh, err := worker.NewScheduler("stats_refresh", svc.RefreshDashboard, refreshCfg, logger, workerMetrics)
	if err != nil {
		return nil, err
	}

	poolCfg := worker.DefaultConfig()
	poolCfg.Schedule = "@every 15s"
	poolCfg.JobTimeout = time.Second
	poolStats, err := worker.NewScheduler("db_pool_stats", func(context.Context) error {
		s := database.Stats()
		metrics.UpdateDBConnectionStats(s.InUse, s.Idle)
		return nil
	}, poolCfg, logger, workerMetrics)
	if err != nil {
		return nil, err
	}

	return []*worker.Scheduler{refresh, poolStats}, nil
}

func setupRoutes(cfg config.Config, svc *newsUC.Service, searchLimiter *middleware.RateLimiter) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: svc.DB})
	mux.Handle("/metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.Handle("GET /api/health", &hhttp.HealthHandler{Checker: svc})
	status := &hhttp.StatusHandler{Reporter: svc}
	mux.Handle("GET /api/status", status)
	mux.Handle("GET /api/admin/status", status)

	hnews.Register(mux, svc, cfg.PaginationPolicy(), searchLimiter.Middleware)
	hstats.Register(mux, svc)
	return mux
}

// applyMiddleware wraps the router. The first middleware listed is outermost.
func applyMiddleware(logger *slog.Logger, cfg config.Config, handler http.Handler) http.Handler {
	corsConfig := middleware.DefaultCORSConfig(cfg.Server.CORSAllowedOrigins)
	corsConfig.Logger = logger
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", cfg.Server.CORSAllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods))

	if !cfg.Server.CSPEnabled {
		logger.Warn("CSP is disabled")
	}

	return hhttp.Chain(handler,
		middleware.CORS(corsConfig),
		middleware.SecurityHeaders(middleware.DefaultCSPConfig(cfg.Server.CSPEnabled, cfg.Server.CSPReportOnly)),
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.InputValidation(),
		hhttp.MetricsMiddleware,
		hhttp.Timeout(cfg.Server.RequestTimeout),
	)
}

func runServer(ctx context.Context, logger *slog.Logger, cfg config.Config, components *ServerComponents) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           components.Handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)

	cleanupCfg := hhttp.LoadCleanupConfigFromEnv("search")
	g.Go(func() error {
		hhttp.StartRateLimitCleanup(gctx, components.SearchLimiter, cleanupCfg)
		return nil
	})
	logger.Info("search rate limit cleanup started",
		slog.Duration("interval", cleanupCfg.Interval),
		slog.Duration("max_idle", cleanupCfg.MaxIdle))

	for _, s := range components.Schedulers {
		s.Start()
	}

	g.Go(func() error {
		logger.Info("server starting", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		for _, s := range components.Schedulers {
			if err := s.Stop(shutdownCtx); err != nil {
				logger.Warn("scheduler did not stop in time", slog.Any("error", err))
			}
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		logger.Info("server stopped gracefully")
		return nil
	})

	return g.Wait()
}
