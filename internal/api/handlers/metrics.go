package handlers

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/brdocs-api/internal/services"
)

// MetricsHandler exposes runtime and cache statistics.
type MetricsHandler struct {
	services  *services.Container
	logger    *logrus.Logger
	startTime time.Time
}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler(services *services.Container, logger *logrus.Logger) *MetricsHandler {
	return &MetricsHandler{
		services:  services,
		logger:    logger,
		startTime: time.Now(),
	}
}

// GetMetrics handles metrics request
// @Summary Get application metrics
// @Description Returns process runtime statistics and cache usage
// @Tags Metrics
// @Produce json
// @Success 200 {object} models.StandardResponse
// @Router /metrics [get]
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	h.logger.WithField("request_id", c.GetString("request_id")).Debug("Collecting application metrics")

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	cacheStats, _ := h.services.CacheService.GetStats(c.Request.Context())

	respondOK(c, "Métricas coletadas", gin.H{
		"system": gin.H{
			"goroutines":      runtime.NumGoroutine(),
			"memory_alloc_mb": float64(m.Alloc) / 1024 / 1024,
			"gc_runs":         m.NumGC,
			"uptime":          time.Since(h.startTime).String(),
		},
		"cache":     cacheStats,
		"timestamp": time.Now(),
	})
}
