package audit_logs

import (
	"fmt"
	"time"

	"safetybot-backend/internal/util/logger"

	"github.com/google/uuid"
)

var log = logger.GetLogger()

type AuditLogService struct {
	repository *AuditLogRepository
}

// WriteAuditLog is fire-and-forget: a failed audit write is logged but
// never fails the calling operation.
func (s *AuditLogService) WriteAuditLog(message string, userID *uuid.UUID) {
	auditLog := &AuditLog{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repository.Create(auditLog); err != nil {
		log.Error("Failed to write audit log", "message", message, "error", err)
	}
}

func (s *AuditLogService) GetUserAuditLogs(
	userID uuid.UUID,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	limit := request.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	offset := request.Offset
	if offset < 0 {
		offset = 0
	}

	logs, total, err := s.repository.GetByUser(userID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}

	return &GetAuditLogsResponse{
		AuditLogs: logs,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}
