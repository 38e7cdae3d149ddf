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

	"github.com/alvisk/encode-spoonOS-sub000/config"
	agentClient "github.com/alvisk/encode-spoonOS-sub000/internal/adapter/agent"
	"github.com/alvisk/encode-spoonOS-sub000/internal/adapter/chain"
	httpHandler "github.com/alvisk/encode-spoonOS-sub000/internal/adapter/http/handler"
	redisStorage "github.com/alvisk/encode-spoonOS-sub000/internal/adapter/storage/redis"
	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"
	"github.com/alvisk/encode-spoonOS-sub000/internal/service"
	"github.com/alvisk/encode-spoonOS-sub000/pkg/logger"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Wallet Guardian API")

	ctx := context.Background()

	// Chain clients
	chainHTTP := &http.Client{Timeout: cfg.Chain.Timeout}
	explorer := chain.NewExplorerClient(cfg.Chain.ExplorerAPIURL, cfg.Chain.ExplorerAPIKey, chainHTTP, log)
	neoRPC := chain.NewNeoRPC(cfg.Chain.NeoRPCURL, chainHTTP, log)

	healthCheckers := []ports.HealthChecker{chain.NewNeoHealthCheck(neoRPC)}

	// Optional Redis-backed wallet cache
	var walletCache ports.WalletCache
	if cfg.Cache.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected, wallet cache enabled")

		walletCache = redisStorage.NewWalletCache(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Agent gateway
	agent := agentClient.NewClient(cfg.Agent.BaseURL, &http.Client{Timeout: cfg.Agent.Timeout}, log)

	// Business services
	pricing := service.NewFixedPricing()
	scanSvc := service.NewScanService(explorer, neoRPC, pricing, walletCache, cfg.Cache.TTL, log)
	activitySvc := service.NewActivityService(explorer, neoRPC, pricing, walletCache, cfg.Cache.TTL, log)
	demo := service.NewDemoData()

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Demo:            demo,
		ScanSvc:         scanSvc,
		ActivitySvc:     activitySvc,
		Agent:           agent,
		Voice:           agent,
		LiveScanEnabled: cfg.Scan.LiveEnabled,
		HealthCheckers:  healthCheckers,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
