package cmd

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"btickets/config"
	"btickets/internal/client"
	"btickets/internal/mockapi"
	"btickets/security"
	"btickets/utils"
)

// Start runs the stub backend until interrupted. It is the development
// harness for the API client: every endpoint the client consumes is served
// over fixture data.
func Start() error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := config.LoadConfig()
	if cfg.Environment == "development" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Redis is optional; with it the auth rate limiter counts attempts
	// across restarts and the SDK token store survives them.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		var err error
		redisClient, err = utils.NewRedisClient(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			slog.Warn("redis unavailable, using in-memory rate limiting", "error", err)
		} else {
			defer redisClient.Close()
		}
	}

	limiter := security.NewRateLimiter(redisClient)
	server := mockapi.New(mockapi.Config{
		Secret:      cfg.JWTSecret,
		AuthLimiter: limiter.AuthRateLimit(),
	})

	if cfg.EnableMetrics {
		go serveMetrics(cfg.MetricsPort)
	}

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleShutdown(cancel)

	go smokeCheck(ctx, client.NewFromConfig(cfg, redisClient))

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown", "error", err)
		}
	}()

	log.Printf("stub backend listening on :%s (demo account %s)", cfg.Port, mockapi.DemoEmail)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// smokeCheck hits the configured API with the shipped SDK once the
// harness is up, so a bad API_BASE_URL or dead upstream is visible in
// the logs at startup instead of on the first app screen.
func smokeCheck(ctx context.Context, sdk *client.Client) {
	// Give the listener a moment in case the API base URL points at this
	// very harness.
	select {
	case <-time.After(time.Second):
	case <-ctx.Done():
		return
	}

	checkCtx, checkCancel := context.WithTimeout(ctx, 5*time.Second)
	defer checkCancel()

	events, err := sdk.Events(checkCtx)
	if err != nil {
		slog.Warn("api smoke check failed", "error", err)
		return
	}
	slog.Info("api smoke check ok", "events", len(events))
}

func serveMetrics(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		slog.Error("metrics server", "error", err)
	}
}

// handleShutdown handles graceful shutdown
func handleShutdown(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
	cancel()
}
