package handlers

import (
	"net/http"
	"time"

	"user-service/internal/config"
	"user-service/internal/infrastructure/cache"
	"user-service/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

// NewHealthHandler creates a new health handler. Both dependencies are
// optional; a nil dependency is reported as disabled.
func NewHealthHandler(db *gorm.DB, redisCache *cache.RedisCache) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: redisCache,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	cfg := config.Get()

	status := "healthy"
	services := make(map[string]string)

	switch {
	case h.db == nil:
		services["database"] = "disabled"
	case database.HealthCheck(h.db) != nil:
		services["database"] = "unhealthy"
		status = "unhealthy"
	default:
		services["database"] = "healthy"
	}

	switch {
	case h.cache == nil:
		services["cache"] = "disabled"
	case h.cache.Ping(c.Request.Context()) != nil:
		services["cache"] = "unhealthy"
		status = "unhealthy"
	default:
		services["cache"] = "healthy"
	}

	httpStatus := http.StatusOK
	if status != "healthy" {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   cfg.App.Version,
		Services:  services,
	})
}

// ReadinessCheck handles GET /ready
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	ready := h.db == nil || database.HealthCheck(h.db) == nil

	httpStatus := http.StatusOK
	if !ready {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"ready":     ready,
		"timestamp": time.Now(),
	})
}

// LivenessCheck handles GET /live
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
