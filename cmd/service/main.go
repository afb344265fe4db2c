package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "centralkitchen/internal/app"
	"centralkitchen/internal/handlers/rest/healthcheck_head"
	"centralkitchen/internal/handlers/rest/ingredients_get"
	"centralkitchen/internal/handlers/rest/inventory_check_get"
	"centralkitchen/internal/handlers/rest/inventory_low_stock_get"
	"centralkitchen/internal/handlers/rest/login_post"
	"centralkitchen/internal/handlers/rest/order_cancel_post"
	"centralkitchen/internal/handlers/rest/order_get"
	"centralkitchen/internal/handlers/rest/order_post"
	"centralkitchen/internal/handlers/rest/order_reject_post"
	"centralkitchen/internal/handlers/rest/order_stats_get"
	"centralkitchen/internal/handlers/rest/order_status_put"
	"centralkitchen/internal/handlers/rest/orders_get"
	"centralkitchen/internal/handlers/rest/ping_get"
	"centralkitchen/internal/handlers/rest/register_post"
	"centralkitchen/internal/pkg/config"
	"centralkitchen/internal/pkg/dotenv"
	"centralkitchen/internal/pkg/kafka"
	metrics_system "centralkitchen/internal/pkg/metrics"
	authmw "centralkitchen/internal/pkg/middlewares/auth"
	"centralkitchen/internal/pkg/middlewares/graceful_shutdown"
	"centralkitchen/internal/pkg/middlewares/metrics"
	"centralkitchen/internal/pkg/middlewares/rate_limiter"
	"centralkitchen/internal/pkg/middlewares/timeout"
	"centralkitchen/internal/pkg/seed"
	"centralkitchen/pkg/logger"
	"centralkitchen/pkg/logger/zap_adapter"
	"centralkitchen/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting central-kitchen application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	seedData, err := seed.Load(cfg.Seed.CatalogFile, cfg.Seed.InventoryFile, cfg.Seed.UsersFile)
	if err != nil {
		return fmt.Errorf("seed data: %w", err)
	}
	runLog.With(
		logger.NewField("ingredients", len(seedData.Ingredients)),
		logger.NewField("stores", len(seedData.Stores)),
		logger.NewField("users", len(seedData.Users)),
	).Info("seed data loaded")

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka, brokers)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, seedData, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/auth/login", login_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/auth/register", register_post.New(log, app.ServiceAuth)).Methods("POST")

	// всё ниже требует Bearer token
	protected := router.NewRoute().Subrouter()
	protected.Use(authmw.Middleware(log, app.ServiceAuth))

	protected.Handle("/order", order_post.New(log, app.ServiceLedger, app.EventPublisher)).Methods("POST")
	protected.Handle("/order/{id}", order_get.New(log, app.ServiceLedger)).Methods("GET")
	protected.Handle("/orders", orders_get.New(log, app.ServiceLedger)).Methods("GET")
	protected.Handle("/orders/stats", order_stats_get.New(log, app.ServiceLedger)).Methods("GET")
	protected.Handle("/order/{id}/status", order_status_put.New(log, app.ServiceLedger, app.EventPublisher)).Methods("PUT")
	protected.Handle("/order/{id}/reject", order_reject_post.New(log, app.ServiceLedger, app.EventPublisher)).Methods("POST")
	protected.Handle("/order/{id}/cancel", order_cancel_post.New(log, app.ServiceLedger, app.EventPublisher)).Methods("POST")

	protected.Handle("/ingredients", ingredients_get.New(log, app.Catalog)).Methods("GET")
	protected.Handle("/inventory/{storeId}/low-stock", inventory_low_stock_get.New(log, app.ServiceLedger)).Methods("GET")
	protected.Handle("/inventory/{storeId}/{ingredientId}", inventory_check_get.New(log, app.ServiceLedger)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
