package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/addrwatch/btctracker/internal/controller"
	"github.com/addrwatch/btctracker/internal/handler/metrics"
	"github.com/addrwatch/btctracker/internal/handler/transactions"
	"github.com/addrwatch/btctracker/internal/utils/config"
	"github.com/addrwatch/btctracker/internal/utils/logger"
)

type Handler struct {
	TransactionsHandler transactions.IHandler
	MetricsHandler      *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	ctrl controller.IController,
	metricsRegistry *prometheus.Registry) *Handler {
	return &Handler{
		TransactionsHandler: transactions.New(ctrl, logger, appConfig),
		MetricsHandler:      metrics.NewMetricsHandler(metricsRegistry),
	}
}
