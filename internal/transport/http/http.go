package http

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/addrwatch/btctracker/internal/controller"
	"github.com/addrwatch/btctracker/internal/handler"
	"github.com/addrwatch/btctracker/internal/monitoring"
	"github.com/addrwatch/btctracker/internal/utils/config"
	"github.com/addrwatch/btctracker/internal/utils/logger"
)

func setupCORS(r *gin.Engine, cfg *config.AppConfig) {
	if cfg.ApiServer.AllowedOrigins == "" {
		return
	}

	corsOrigins := strings.Split(cfg.ApiServer.AllowedOrigins, ";")
	r.Use(cors.New(
		cors.Config{
			AllowOrigins: corsOrigins,
			AllowMethods: []string{"GET", "POST", "OPTIONS", "HEAD"},
			AllowHeaders: []string{
				"Origin", "Host", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Accept",
				"X-CSRF-Token", "Authorization", "X-Requested-With",
			},
			AllowCredentials: true,
		},
	))
}

func NewHttpServer(appConfig *config.AppConfig, logger *logger.Logger, ctrl controller.IController, metricsRegistry *prometheus.Registry) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.LoggerWithWriter(gin.DefaultWriter, "/healthz", "/metrics"),
		gin.Recovery(),
	)
	setupCORS(r, appConfig)

	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(metricsRegistry)
	r.Use(httpMetrics.Middleware())

	h := handler.New(appConfig, logger, ctrl, metricsRegistry)

	loadV1Routes(r, h, appConfig, logger)

	return r
}
