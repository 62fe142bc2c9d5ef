package audit_logs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuditLogController struct {
	auditLogService *AuditLogService
}

func (c *AuditLogController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/logs", c.GetRecentRecords)
}

// GetRecentRecords
// @Summary Query recent audit records
// @Description Most recent records first. Raw secrets are never stored, only fingerprints.
// @Tags logs
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum records to return (default 100, cap 1000)"
// @Param before query string false "Only records older than this timestamp (RFC3339 or unix)"
// @Success 200 {object} GetAuditRecordsResponse
// @Failure 401 {object} map[string]string
// @Router /logs [get]
func (c *AuditLogController) GetRecentRecords(ctx *gin.Context) {
	var request GetAuditRecordsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.auditLogService.GetRecentRecords(&request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query audit records"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
