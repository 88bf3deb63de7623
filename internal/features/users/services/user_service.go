package users_services

import (
	"errors"
	"fmt"
	"time"

	"safetybot-backend/internal/features/encryption/secrets"
	users_dto "safetybot-backend/internal/features/users/dto"
	users_interfaces "safetybot-backend/internal/features/users/interfaces"
	users_models "safetybot-backend/internal/features/users/models"
	users_repositories "safetybot-backend/internal/features/users/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepository   *users_repositories.UserRepository
	secretKeyService *secrets.SecretKeyService
	auditLogWriter   users_interfaces.AuditLogWriter
}

func (s *UserService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *UserService) SignUp(request *users_dto.SignUpRequestDTO) (*users_dto.SignInResponseDTO, error) {
	existingUser, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &users_models.User{
		ID:                   uuid.New(),
		Email:                request.Email,
		DisplayName:          request.DisplayName,
		HashedPassword:       string(hashedPassword),
		PasswordCreationTime: now,
		Progress:             -1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.userRepository.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.writeAuditLog(fmt.Sprintf("User registered with email: %s", user.Email), &user.ID)

	return s.GenerateAccessToken(user)
}

func (s *UserService) SignIn(
	request *users_dto.SignInRequestDTO,
) (*users_dto.SignInResponseDTO, error) {
	user, err := s.userRepository.GetUserByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user == nil {
		return nil, errors.New("user with this email does not exist")
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(request.Password))
	if err != nil {
		return nil, errors.New("password is incorrect")
	}

	response, err := s.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	s.writeAuditLog(fmt.Sprintf("User signed in with email: %s", user.Email), &user.ID)

	return response, nil
}

func (s *UserService) GetUserFromToken(token string) (*users_models.User, error) {
	secretKey, err := s.secretKeyService.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("invalid token claims")
	}

	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	passwordCreationTimeUnix, ok := claims["passwordCreationTime"].(float64)
	if !ok {
		return nil, errors.New("invalid token claims: missing password creation time")
	}

	tokenTime := time.Unix(int64(passwordCreationTimeUnix), 0).Truncate(time.Second)
	userTime := user.PasswordCreationTime.Truncate(time.Second)
	if !tokenTime.Equal(userTime) {
		return nil, errors.New("password has been changed, please sign in again")
	}

	return user, nil
}

func (s *UserService) GenerateAccessToken(
	user *users_models.User,
) (*users_dto.SignInResponseDTO, error) {
	secretKey, err := s.secretKeyService.GetSecretKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret key: %w", err)
	}

	expiration := time.Now().UTC().Add(time.Hour * 24 * 30)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":                  user.ID.String(),
		"exp":                  expiration.Unix(),
		"iat":                  time.Now().UTC().Unix(),
		"passwordCreationTime": user.PasswordCreationTime.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &users_dto.SignInResponseDTO{
		UserID: user.ID,
		Token:  tokenString,
	}, nil
}

func (s *UserService) GetUserByID(userID uuid.UUID) (*users_models.User, error) {
	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) UpdateProfile(
	userID uuid.UUID,
	request *users_dto.UpdateProfileRequestDTO,
) (*users_models.User, error) {
	if err := s.userRepository.UpdateUserInfo(userID, request.DisplayName, request.PhotoURL); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return s.userRepository.GetUserByID(userID)
}

func (s *UserService) UpdateProgress(userID uuid.UUID, progress int) error {
	if err := s.userRepository.UpdateProgress(userID, progress); err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}

	return nil
}

// MarkPersonaDirty flags the user for the next persona sync run.
// Called after journal writes.
func (s *UserService) MarkPersonaDirty(userID uuid.UUID) error {
	return s.userRepository.SetUpdatePersona(userID, true)
}

func (s *UserService) ClearPersonaDirty(userID uuid.UUID) error {
	return s.userRepository.SetUpdatePersona(userID, false)
}

func (s *UserService) GetUsersWithDirtyPersona() ([]*users_models.User, error) {
	return s.userRepository.GetUsersWithDirtyPersona()
}

func (s *UserService) writeAuditLog(message string, userID *uuid.UUID) {
	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(message, userID)
	}
}
