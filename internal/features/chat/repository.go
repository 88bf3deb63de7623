package chat

import (
	"safetybot-backend/internal/storage"

	"github.com/google/uuid"
)

type ChatRepository struct{}

func (r *ChatRepository) Append(message *ChatMessage) error {
	return storage.GetDb().Create(message).Error
}

func (r *ChatRepository) GetByUser(userID uuid.UUID) ([]*ChatMessage, error) {
	var messages []*ChatMessage

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *ChatRepository) Clear(userID uuid.UUID) error {
	return storage.GetDb().
		Where("user_id = ?", userID).
		Delete(&ChatMessage{}).Error
}
