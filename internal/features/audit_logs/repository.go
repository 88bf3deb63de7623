package audit_logs

import (
	"time"

	"safetybot-backend/internal/storage"

	"github.com/google/uuid"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) Create(log *AuditLog) error {
	return storage.GetDb().Create(log).Error
}

func (r *AuditLogRepository) GetByUser(
	userID uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*AuditLog, int64, error) {
	var logs []*AuditLog
	var total int64

	countQuery := storage.GetDb().Model(&AuditLog{}).Where("user_id = ?", userID)
	if beforeDate != nil {
		countQuery = countQuery.Where("created_at < ?", *beforeDate)
	}

	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	dataQuery := storage.GetDb().
		Where("user_id = ?", userID).
		Limit(limit).
		Offset(offset).
		Order("created_at DESC")

	if beforeDate != nil {
		dataQuery = dataQuery.Where("created_at < ?", *beforeDate)
	}

	if err := dataQuery.Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
