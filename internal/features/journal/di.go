package journal

import (
	"safetybot-backend/internal/features/audit_logs"
	users_services "safetybot-backend/internal/features/users/services"
)

var journalRepository = &JournalRepository{}
var journalService = &JournalService{
	journalRepository,
	users_services.GetUserService(),
	audit_logs.GetAuditLogService(),
}
var journalController = &JournalController{journalService}

func GetJournalService() *JournalService {
	return journalService
}

func GetJournalController() *JournalController {
	return journalController
}
