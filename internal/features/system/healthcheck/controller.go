package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.GetHealth)
}

// GetHealth
// @Summary Service health
// @Description Reports dependency availability and host resource usage
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (c *HealthcheckController) GetHealth(ctx *gin.Context) {
	if err := c.healthcheckService.CheckAvailability(); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}

	stats, err := c.healthcheckService.GetResourceStats()
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"resources": stats,
	})
}
