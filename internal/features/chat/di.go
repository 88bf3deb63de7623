package chat

import (
	"safetybot-backend/internal/config"
	users_services "safetybot-backend/internal/features/users/services"
)

var chatRepository = &ChatRepository{}
var chatService = &ChatService{
	chatRepository,
	users_services.GetUserService(),
}
var chatProxy = NewChatProxy(config.GetEnv().ReportgenChatbotURL)
var chatController = &ChatController{chatService, chatProxy}

func GetChatService() *ChatService {
	return chatService
}

func GetChatProxy() *ChatProxy {
	return chatProxy
}

func GetChatController() *ChatController {
	return chatController
}
