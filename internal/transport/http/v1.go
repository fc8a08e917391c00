package http

import (
	"github.com/gin-gonic/gin"

	"github.com/addrwatch/btctracker/internal/handler"
	"github.com/addrwatch/btctracker/internal/utils/config"
	"github.com/addrwatch/btctracker/internal/utils/logger"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler, appConfig *config.AppConfig, logger *logger.Logger) {
	v1 := r.Group("/api/v1")

	address := v1.Group("/address")
	{
		address.POST("/:address/fetch", h.TransactionsHandler.Fetch)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", h.TransactionsHandler.List)
	}

	r.GET("/metrics", h.MetricsHandler.Handler())

	// health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "ok",
		})
	})
}
