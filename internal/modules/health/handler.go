package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	serviceName string
	version     string
	environment string
}

func NewHandler(serviceName, version, environment string) *Handler {
	return &Handler{
		serviceName: serviceName,
		version:     version,
		environment: environment,
	}
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/health", h.Health)
}

// Health reports liveness. It has no dependencies: the endpoint answers
// UP even when the store is down.
// @Summary		Health check
// @Tags		Health
// @Success		200	{object}	map[string]interface{}
// @Router		/health [GET]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "UP",
		"service":     h.serviceName,
		"version":     h.version,
		"timestamp":   time.Now().UnixMilli(),
		"environment": h.environment,
	})
}
