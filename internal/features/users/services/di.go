package users_services

import (
	"safetybot-backend/internal/features/encryption/secrets"
	users_repositories "safetybot-backend/internal/features/users/repositories"
)

var userService = &UserService{
	users_repositories.GetUserRepository(),
	secrets.GetSecretKeyService(),
	nil,
}

func GetUserService() *UserService {
	return userService
}
