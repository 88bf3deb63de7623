package journal

import (
	"time"

	"github.com/google/uuid"
)

type SaveEntryRequestDTO struct {
	Title   string `json:"title"   binding:"required"`
	Content string `json:"content" binding:"required"`
	Date    string `json:"date"    binding:"required"` // YYYY-MM-DD
}

// EntryResponseDTO carries decrypted fields back to the owner.
type EntryResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListEntriesResponseDTO struct {
	Entries []*EntryResponseDTO `json:"entries"`
}
