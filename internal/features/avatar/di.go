package avatar

import (
	"safetybot-backend/internal/config"
	users_services "safetybot-backend/internal/features/users/services"
)

var questionBankClient = NewQuestionBankClient(config.GetEnv().QuestionBankURL)
var avatarController = NewAvatarController(
	users_services.GetUserService(),
	questionBankClient,
	config.GetEnv().GeminiModel,
	config.GetEnv().GeminiLiveURL,
	config.GetEnv().GeminiAPIKey,
)

func GetQuestionBankClient() *QuestionBankClient {
	return questionBankClient
}

func GetAvatarController() *AvatarController {
	return avatarController
}
