package journal

import (
	"time"

	"safetybot-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JournalRepository struct{}

func (r *JournalRepository) Create(entry *JournalEntry) error {
	return storage.GetDb().Create(entry).Error
}

func (r *JournalRepository) GetByID(userID, entryID uuid.UUID) (*JournalEntry, error) {
	var entry JournalEntry

	err := storage.GetDb().
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &entry, nil
}

func (r *JournalRepository) GetByUser(userID uuid.UUID) ([]*JournalEntry, error) {
	var entries []*JournalEntry

	err := storage.GetDb().
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *JournalRepository) GetByUserAndDateRange(
	userID uuid.UUID,
	from, to time.Time,
) ([]*JournalEntry, error) {
	var entries []*JournalEntry

	err := storage.GetDb().
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *JournalRepository) Update(entry *JournalEntry) error {
	return storage.GetDb().Save(entry).Error
}

func (r *JournalRepository) Delete(userID, entryID uuid.UUID) (bool, error) {
	result := storage.GetDb().
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&JournalEntry{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
