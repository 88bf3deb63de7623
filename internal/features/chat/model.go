package chat

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	ID               uuid.UUID `json:"id"        gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `json:"userId"    gorm:"type:uuid;not null;index"`
	Role             string    `json:"role"      gorm:"not null"`
	EncryptedMessage string    `json:"-"         gorm:"not null"`
	CreatedAt        time.Time `json:"createdAt" gorm:"not null"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
