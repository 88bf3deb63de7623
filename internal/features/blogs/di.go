package blogs

import (
	"safetybot-backend/internal/features/audit_logs"
)

var blogRepository = &BlogRepository{}
var blogService = &BlogService{
	blogRepository,
	audit_logs.GetAuditLogService(),
}
var blogController = &BlogController{blogService}

func GetBlogService() *BlogService {
	return blogService
}

func GetBlogController() *BlogController {
	return blogController
}
