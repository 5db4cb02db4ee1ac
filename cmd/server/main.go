// Package main is the entry point for the salespoint API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/klauspost/compress/gzhttp"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"salespoint/internal/domain/auth"
	"salespoint/internal/domain/catalog"
	"salespoint/internal/domain/reports"
	"salespoint/internal/infrastructure/cache"
	v1 "salespoint/internal/infrastructure/http/v1"
	"salespoint/internal/infrastructure/storage/postgres"
	"salespoint/internal/infrastructure/storage/postgres/auth_repo"
	"salespoint/internal/infrastructure/storage/postgres/catalog_repo"
	"salespoint/internal/infrastructure/storage/postgres/report_repo"
	"salespoint/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Monetary amounts serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting salespoint server")

	// --- Database pool ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}
	if minConns := getEnvInt("DB_MIN_CONNS", 0); minConns > 0 {
		poolCfg.MinConns = int32(minConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	// --- Audit store ---
	auditStore, err := postgres.NewAuditStore(pool.Pool)
	if err != nil {
		log.Errorw("failed to create audit store", "error", err)
		return
	}

	// --- Summary cache (optional) ---
	var summaryCache reports.SummaryCache
	if addr := getEnv("REDIS_ADDR", ""); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warnw("redis unavailable, summary cache disabled", "error", err)
		} else {
			summaryCache = cache.NewSummaryCache(client)
			defer client.Close()
			log.Infow("summary cache enabled", "addr", addr)
		}
	}

	// --- Services ---
	catalogService := catalog.NewService(
		catalog_repo.NewProductRepo(pool.Pool),
		catalog_repo.NewSupplierRepo(pool.Pool),
		auditStore,
	)

	reportsService := reports.NewService(report_repo.NewReportRepo(pool.Pool), summaryCache)

	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(
		getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
	))
	authService := auth.NewService(
		auth_repo.NewUserRepo(pool.Pool),
		jwtService,
		auditStore,
		auth.DefaultServiceConfig(),
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:           pool,
		Logger:         log,
		CatalogService: catalogService,
		ReportsService: reportsService,
		AuthService:    authService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      gzhttp.GzipHandler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine. Failures are reported back to main so
	// the deferred pool and cache teardown still runs.
	serverErr := make(chan error, 1)
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Errorw("server failed", "error", err)
		return
	case <-quit:
	}

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return
	}

	log.Info("server stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
