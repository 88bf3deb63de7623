package users_testing

import (
	"fmt"

	users_dto "safetybot-backend/internal/features/users/dto"
	users_services "safetybot-backend/internal/features/users/services"

	"github.com/google/uuid"
)

// CreateTestUser registers a fresh user through the service layer and
// returns the sign-in response with its token.
func CreateTestUser() *users_dto.SignInResponseDTO {
	email := fmt.Sprintf("test-%s@example.com", uuid.New().String()[:8])
	return CreateTestUserWithEmail(email)
}

func CreateTestUserWithEmail(email string) *users_dto.SignInResponseDTO {
	response, err := users_services.GetUserService().SignUp(&users_dto.SignUpRequestDTO{
		Email:       email,
		Password:    "test-password-123",
		DisplayName: "Test Worker",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return response
}
