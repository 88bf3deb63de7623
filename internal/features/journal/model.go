package journal

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry stores only encrypted envelopes; the plaintext title and
// content never touch the database. Updates replace whole envelopes.
type JournalEntry struct {
	ID               uuid.UUID `json:"id"        gorm:"column:id;primaryKey"`
	UserID           uuid.UUID `json:"userId"    gorm:"column:user_id;index"`
	EncryptedTitle   string    `json:"-"         gorm:"column:encrypted_title"`
	EncryptedContent string    `json:"-"         gorm:"column:encrypted_content"`
	Date             time.Time `json:"date"      gorm:"column:date"`
	CreatedAt        time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
