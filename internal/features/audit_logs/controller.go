package audit_logs

import (
	"net/http"

	users_middleware "safetybot-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type AuditLogController struct {
	service *AuditLogService
}

func (c *AuditLogController) RegisterRoutes(router gin.IRoutes) {
	router.GET("/audit-logs", c.GetAuditLogs)
}

// GetAuditLogs
// @Summary Get the authenticated user's audit log
// @Tags audit-logs
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit number of results" default(100)
// @Param offset query int false "Offset for pagination" default(0)
// @Param beforeDate query string false "Only logs created before this date (RFC3339)" format(date-time)
// @Success 200 {object} GetAuditLogsResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /audit-logs [get]
func (c *AuditLogController) GetAuditLogs(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	request := &GetAuditLogsRequest{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	response, err := c.service.GetUserAuditLogs(user.ID, request)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve audit logs"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
