package chat

import (
	"fmt"
	"time"

	users_models "safetybot-backend/internal/features/users/models"
	users_services "safetybot-backend/internal/features/users/services"
	"safetybot-backend/internal/util/encryption"
	"safetybot-backend/internal/util/logger"

	"github.com/google/uuid"
)

const decryptFallbackMessage = "Unable to decrypt message"

var log = logger.GetLogger()

type ChatService struct {
	chatRepository *ChatRepository
	userService    *users_services.UserService
}

func (s *ChatService) AppendMessage(
	user *users_models.User,
	request *AppendMessageRequestDTO,
) (*MessageDTO, error) {
	envelope, err := encryption.Encrypt(request.Message, user.EncryptionSecret())
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt message: %w", err)
	}

	message := &ChatMessage{
		ID:               uuid.New(),
		UserID:           user.ID,
		Role:             request.Role,
		EncryptedMessage: envelope,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.chatRepository.Append(message); err != nil {
		return nil, err
	}

	if err := s.userService.MarkPersonaDirty(user.ID); err != nil {
		log.Error("Failed to mark persona dirty", "userId", user.ID, "error", err)
	}

	return &MessageDTO{
		Role:      message.Role,
		Message:   request.Message,
		CreatedAt: message.CreatedAt,
	}, nil
}

func (s *ChatService) GetHistory(user *users_models.User) (*HistoryResponseDTO, error) {
	messages, err := s.chatRepository.GetByUser(user.ID)
	if err != nil {
		return nil, err
	}

	history := make([]MessageDTO, 0, len(messages))
	for _, message := range messages {
		history = append(history, MessageDTO{
			Role: message.Role,
			Message: encryption.DecryptOrFallback(
				message.EncryptedMessage,
				user.EncryptionSecret(),
				decryptFallbackMessage,
			),
			CreatedAt: message.CreatedAt,
		})
	}

	return &HistoryResponseDTO{Messages: history}, nil
}

func (s *ChatService) ClearHistory(user *users_models.User) error {
	return s.chatRepository.Clear(user.ID)
}
