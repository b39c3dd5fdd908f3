package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/brdocs-api/internal/models"
	"github.com/nexconsult/brdocs-api/internal/services"
)

// CacheHandler handles cache management requests
type CacheHandler struct {
	cacheService services.CacheServiceInterface
	logger       *logrus.Logger
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(cacheService services.CacheServiceInterface, logger *logrus.Logger) *CacheHandler {
	return &CacheHandler{
		cacheService: cacheService,
		logger:       logger,
	}
}

// GetStats handles cache statistics request
// @Summary Get cache statistics
// @Description Get detailed cache statistics and metrics
// @Tags Cache
// @Produce json
// @Success 200 {object} models.StandardResponse
// @Failure 500 {object} models.StandardResponse
// @Router /cache/stats [get]
func (h *CacheHandler) GetStats(c *gin.Context) {
	requestID := c.GetString("request_id")

	stats, err := h.cacheService.GetStats(c.Request.Context())
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get cache statistics")

		resp := models.NewErrorResponse(models.ErrorCodeInternalError, "Failed to retrieve cache statistics", nil)
		resp.SetRequestID(requestID)
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	respondOK(c, "Estatísticas do cache", gin.H{
		"stats":     stats,
		"timestamp": time.Now(),
	})
}

// Clear handles cache clearing request
// @Summary Clear the cache
// @Description Remove all cached lookup results
// @Tags Cache
// @Produce json
// @Success 200 {object} models.StandardResponse
// @Router /cache/clear [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	requestID := c.GetString("request_id")

	if err := h.cacheService.Clear(c.Request.Context()); err != nil {
		h.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to clear cache")

		resp := models.NewErrorResponse(models.ErrorCodeInternalError, "Failed to clear cache", nil)
		resp.SetRequestID(requestID)
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	h.logger.WithField("request_id", requestID).Info("Cache cleared via API")

	respondOK(c, "Cache limpo", nil)
}

// Delete handles removal of one cached entry
// @Summary Delete a cache entry
// @Description Remove one cached lookup result by its key
// @Tags Cache
// @Param key path string true "Cache key" example(cep:01310100)
// @Produce json
// @Success 200 {object} models.StandardResponse
// @Router /cache/{key} [delete]
func (h *CacheHandler) Delete(c *gin.Context) {
	key := c.Param("key")

	if err := h.cacheService.Delete(c.Request.Context(), key); err != nil {
		resp := models.NewErrorResponse(models.ErrorCodeInternalError, "Failed to delete cache entry", nil)
		resp.SetRequestID(c.GetString("request_id"))
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	respondOK(c, "Entrada removida do cache", gin.H{"key": key})
}
