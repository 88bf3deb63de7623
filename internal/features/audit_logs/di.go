package audit_logs

import (
	users_services "safetybot-backend/internal/features/users/services"
)

var auditLogRepository = &AuditLogRepository{}
var auditLogService = &AuditLogService{auditLogRepository}
var auditLogController = &AuditLogController{auditLogService}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

func GetAuditLogController() *AuditLogController {
	return auditLogController
}

// SetupDependencies breaks the users ↔ audit_logs import cycle: users
// takes the writer through an interface set here.
func SetupDependencies() {
	users_services.GetUserService().SetAuditLogWriter(auditLogService)
}
