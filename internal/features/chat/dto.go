package chat

import "time"

type AppendMessageRequestDTO struct {
	Message string `json:"message" binding:"required"`
	Role    string `json:"role"    binding:"required,oneof=user assistant"`
}

type MessageDTO struct {
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type HistoryResponseDTO struct {
	Messages []MessageDTO `json:"messages"`
}
