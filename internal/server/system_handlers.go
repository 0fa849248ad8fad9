package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"classbook/internal/api"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /api/v1/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "healthy"})
}

// @Summary      Welcome
// @Tags         system
// @Produce      json
// @Success      200 {object} api.MessageResponse
// @Router       / [get]
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, api.MessageResponse{Success: true, Message: "Welcome to the Fitness Booking API"})
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
