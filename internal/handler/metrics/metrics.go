package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler serves the Prometheus metrics endpoint.
type MetricsHandler struct {
	registry *prometheus.Registry
}

func NewMetricsHandler(registry *prometheus.Registry) *MetricsHandler {
	return &MetricsHandler{
		registry: registry,
	}
}

// Handler returns a gin handler wrapping promhttp for the /metrics endpoint.
func (h *MetricsHandler) Handler() gin.HandlerFunc {
	handler := promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})

	return gin.WrapH(handler)
}
