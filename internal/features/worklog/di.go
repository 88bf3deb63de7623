package worklog

import (
	"safetybot-backend/internal/config"
)

var reportService = NewReportService(config.GetEnv().ReportgenChatbotURL)
var reportController = &ReportController{reportService}

func GetReportService() *ReportService {
	return reportService
}

func GetReportController() *ReportController {
	return reportController
}
