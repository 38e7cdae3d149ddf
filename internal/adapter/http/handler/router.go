package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/alvisk/encode-spoonOS-sub000/internal/adapter/http/middleware"
	"github.com/alvisk/encode-spoonOS-sub000/internal/core/ports"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Demo            ports.DemoData
	ScanSvc         ports.ScanService
	ActivitySvc     ports.ActivityService
	Agent           ports.AgentGateway
	Voice           ports.VoiceGateway
	LiveScanEnabled bool
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	walletHandler := NewWalletHandler(deps.Demo, deps.ScanSvc, deps.ActivitySvc, deps.LiveScanEnabled)
	proxyHandler := NewProxyHandler(deps.Agent)
	voiceHandler := NewVoiceHandler(deps.Voice)

	api := r.Group("/api")
	{
		api.GET("/wallets", walletHandler.ListWallets)
		api.GET("/wallets/:address", walletHandler.GetWallet)
		api.GET("/wallets/:address/activity", walletHandler.GetActivity)
		api.GET("/summary", walletHandler.GetSummary)
		api.GET("/alerts", walletHandler.ListAlerts)

		api.POST("/spoonos", proxyHandler.Invoke)

		api.GET("/voice", voiceHandler.Status)
		api.POST("/voice", voiceHandler.Announce)
	}

	return r
}
