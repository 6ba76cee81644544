package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soc-nexus/backend/internal/service"
)

type HealthHandler struct {
	svc *service.HealthService
}

func NewHealthHandler(svc *service.HealthService) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Basic godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} model.BasicHealth
// @Router /health [get]
func (h *HealthHandler) Basic(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Basic())
}

// Detailed godoc
// @Summary All-service health with metrics publish
// @Tags health
// @Produce json
// @Success 200 {object} model.DetailedHealth
// @Router /health/detailed [get]
func (h *HealthHandler) Detailed(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Detailed(c.Request.Context()))
}

// Database godoc
// @Summary Database health
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthStatus
// @Router /health/database [get]
func (h *HealthHandler) Database(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Database(c.Request.Context()))
}

// Cache godoc
// @Summary Cache health
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthStatus
// @Router /health/cache [get]
func (h *HealthHandler) Cache(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Cache(c.Request.Context()))
}

// AI godoc
// @Summary Embeddings provider health
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthStatus
// @Router /health/ai [get]
func (h *HealthHandler) AI(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.AI(c.Request.Context()))
}
