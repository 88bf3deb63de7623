package translation

import (
	"safetybot-backend/internal/config"
)

var translationService = NewTranslationService(
	config.GetEnv().TranslateAPIURL,
	config.GetEnv().TranslateAPIKey,
)
var translationController = &TranslationController{translationService}

func GetTranslationService() *TranslationService {
	return translationService
}

func GetTranslationController() *TranslationController {
	return translationController
}
