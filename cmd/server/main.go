package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/cache"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/config"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/console"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/events"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/handler"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/leads"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/middleware"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/notifications"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/rassapi"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/kafka"
	"github.com/raasacademy2024-maker/RASS-sub002/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	logger := logging.New(zapLogger)
	defer logger.Sync()

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}

	api := rassapi.New(rassapi.Config{
		BaseURL:          cfg.RassAPIURL,
		Timeout:          cfg.RassAPITimeout,
		MaxRetries:       cfg.RassAPIRetries,
		RetryDelay:       cfg.RassAPIRetryDelay,
		BreakerThreshold: cfg.RassAPIBreakerThreshold,
		BreakerReset:     cfg.RassAPIBreakerReset,
	}, logger)

	redisConn := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
	})
	defer redisConn.Close()

	authCache := cache.NewRedisCache(redisConn, "rass:")
	if err := authCache.Ping(ctx); err != nil {
		logger.Warn(ctx, "redis unreachable, lookups will go upstream", zap.Error(err))
	}

	var publisher console.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(kafka.Config{Brokers: cfg.KafkaBrokers})
		if err != nil {
			logger.Fatal(ctx, "cannot create kafka producer", zap.Error(err))
		}
		defer producer.Close()
		publisher = events.NewKafkaPublisher(producer, cfg.KafkaContentTopic)
		logger.Info(ctx, "publishing content events",
			zap.Strings("brokers", cfg.KafkaBrokers),
			zap.String("topic", cfg.KafkaContentTopic),
		)
	} else {
		publisher = events.NewLogPublisher(logger)
		logger.Info(ctx, "no kafka brokers configured, content events are only logged")
	}

	registry := console.NewRegistry(api, publisher, logger, cfg.ConsoleIdleTTL)
	go registry.RunSweeper(ctx, cfg.ConsoleSweepInterval)

	limiter := leads.NewLimiter(cfg.LeadRateInterval, cfg.LeadRateBurst)
	go pruneLimiter(ctx, limiter, cfg.LeadRateInterval)

	consoleHandler := handler.NewConsoleHandler(registry)
	leaderboardHandler := handler.NewLeaderboardHandler(api, authCache, cfg.LeaderboardCacheTTL)
	catalogHandler := handler.NewCatalogHandler(api)
	leadsHandler := handler.NewLeadsHandler(leads.NewService(api, logger), limiter)
	eventsHandler := handler.NewEventsHandler(api, authCache, cfg.EventsCacheTTL)
	notificationsHandler := handler.NewNotificationsHandler(notifications.NewService(api, logger))

	authMiddleware := middleware.NewAuthMiddleware(api, authCache, cfg.AuthCacheTTL)
	instructorOnly := middleware.RequireRole(domain.UserRoleInstructor, domain.UserRoleAdmin)
	adminOnly := middleware.RequireRole(domain.UserRoleAdmin)

	r := chi.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 1<<20) // 1 MB
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/courses", catalogHandler.RegisterRoutes)
	r.Route("/leads", leadsHandler.RegisterRoutes)
	r.Route("/events", eventsHandler.RegisterRoutes)

	r.Route("/leaderboard", func(r chi.Router) {
		leaderboardHandler.RegisterRoutes(r, authMiddleware)
	})

	r.Route("/console", func(r chi.Router) {
		consoleHandler.RegisterRoutes(r, authMiddleware, instructorOnly)
	})

	r.Route("/admin/notifications", func(r chi.Router) {
		notificationsHandler.RegisterRoutes(r, authMiddleware, adminOnly)
	})

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info(ctx, "Starting server", zap.String("port", port))

	srv := &http.Server{
		Addr:    port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "cannot start http server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal(ctx, "server forced to shutdown", zap.Error(err))
	}
	logger.Info(ctx, "Server stopped")
}

func pruneLimiter(ctx context.Context, limiter *leads.Limiter, interval time.Duration) {
	ticker := time.NewTicker(10 * interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Prune()
		}
	}
}
