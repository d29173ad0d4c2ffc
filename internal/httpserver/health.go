package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freezer-inventory/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Freezer inventory API"
	HealthVersion = "1.0.0"
	ServiceName   = "freezer-inventory"
)

func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck reports ready once the configured readiness probe passes.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		if err := srv.ready(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "readiness probe failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   err.Error(),
				Data:      healthBody("not_ready"),
			})
			return
		}
	}
	response.OK(c, healthBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}
