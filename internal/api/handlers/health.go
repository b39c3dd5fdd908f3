package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/brdocs-api/internal/models"
	"github.com/nexconsult/brdocs-api/internal/services"
)

// ServiceName identifies this API in health responses.
const ServiceName = "brdocs-api"

// Version is the current API version.
const Version = "1.0.0"

// HealthHandler handles health check requests
type HealthHandler struct {
	services  *services.Container
	logger    *logrus.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(services *services.Container, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		services:  services,
		logger:    logger,
		startTime: time.Now(),
	}
}

// GetHealth handles general health check
// @Summary Health check
// @Description Get the health status of the API and its dependencies
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *gin.Context) {
	servicesHealth := h.services.Health()

	// A dead Redis only degrades the service: the memory cache takes over.
	status := "healthy"
	for _, serviceHealth := range servicesHealth {
		healthMap, ok := serviceHealth.(map[string]interface{})
		if !ok {
			continue
		}
		for _, sub := range healthMap {
			subMap, ok := sub.(map[string]interface{})
			if !ok {
				continue
			}
			if subMap["status"] == "unhealthy" {
				status = "degraded"
			}
		}
	}

	response := models.HealthResponse{
		Status:   status,
		Service:  ServiceName,
		Version:  Version,
		Uptime:   time.Since(h.startTime).String(),
		Services: servicesHealth,
	}

	c.JSON(http.StatusOK, response)
}

// GetLiveness handles liveness probe
// @Summary Liveness check
// @Description Check if the API process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) GetLiveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"timestamp": time.Now(),
	})
}

// GetReadiness handles readiness probe
// @Summary Readiness check
// @Description Check if the API is ready to serve requests
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) GetReadiness(c *gin.Context) {
	// Validation is local and the cache degrades gracefully, so the API
	// is ready as soon as the container is up.
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now(),
	})
}
