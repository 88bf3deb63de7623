package users_dto

import (
	"github.com/google/uuid"
)

type SignUpRequestDTO struct {
	Email       string `json:"email"       binding:"required,email"`
	Password    string `json:"password"    binding:"required,min=8"`
	DisplayName string `json:"displayName" binding:"required"`
}

type SignInRequestDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponseDTO struct {
	UserID uuid.UUID `json:"userId"`
	Token  string    `json:"token"`
}

type UpdateProfileRequestDTO struct {
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoUrl"`
}

type UpdateProgressRequestDTO struct {
	Progress int `json:"progress" binding:"min=-1"`
}
