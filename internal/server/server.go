package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/addrwatch/btctracker/internal/btcrpc"
	"github.com/addrwatch/btctracker/internal/cache"
	"github.com/addrwatch/btctracker/internal/controller"
	"github.com/addrwatch/btctracker/internal/monitoring"
	"github.com/addrwatch/btctracker/internal/transport/http"
	"github.com/addrwatch/btctracker/internal/utils/config"
	"github.com/addrwatch/btctracker/internal/utils/logger"
)

func Init(appConfig *config.AppConfig, logger *logger.Logger) {
	metricsRegistry := prometheus.NewRegistry()
	fetchMetrics := monitoring.NewFetchMetrics()
	fetchMetrics.MustRegister(metricsRegistry)

	addressCache := cache.New()
	btcRpc := btcrpc.New(appConfig, logger)
	ctrl := controller.New(addressCache, btcRpc, logger, fetchMetrics)

	if appConfig.RefreshPeriod != "" {
		c := cron.New()
		if _, err := c.AddFunc(appConfig.RefreshPeriod, ctrl.Refresh); err != nil {
			logger.Error("[Init] invalid refresh period", map[string]string{
				"error":  err.Error(),
				"period": appConfig.RefreshPeriod,
			})
		} else {
			c.Start()
		}
	}

	httpServer := http.NewHttpServer(appConfig, logger, ctrl, metricsRegistry)

	if err := httpServer.Run(appConfig.ApiServer.ListenAddr); err != nil {
		logger.Fatal("[Init] http server stopped", map[string]string{
			"error": err.Error(),
		})
	}
}
