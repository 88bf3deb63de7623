package journal

import (
	"errors"
	"fmt"
	"time"

	"safetybot-backend/internal/features/audit_logs"
	users_models "safetybot-backend/internal/features/users/models"
	users_services "safetybot-backend/internal/features/users/services"
	"safetybot-backend/internal/util/encryption"
	"safetybot-backend/internal/util/logger"

	"github.com/google/uuid"
)

var log = logger.GetLogger()

const (
	titlePlaceholder   = "Unable to decrypt title"
	contentPlaceholder = "Unable to decrypt content"
)

var ErrEntryNotFound = errors.New("journal entry not found")

type JournalService struct {
	repository      *JournalRepository
	userService     *users_services.UserService
	auditLogService *audit_logs.AuditLogService
}

func (s *JournalService) CreateEntry(
	user *users_models.User,
	request *SaveEntryRequestDTO,
) (*EntryResponseDTO, error) {
	date, err := parseEntryDate(request.Date)
	if err != nil {
		return nil, err
	}

	encryptedTitle, err := encryption.Encrypt(request.Title, user.EncryptionSecret())
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt title: %w", err)
	}

	encryptedContent, err := encryption.Encrypt(request.Content, user.EncryptionSecret())
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt content: %w", err)
	}

	now := time.Now().UTC()
	entry := &JournalEntry{
		ID:               uuid.New(),
		UserID:           user.ID,
		EncryptedTitle:   encryptedTitle,
		EncryptedContent: encryptedContent,
		Date:             date,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repository.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}

	if err := s.userService.MarkPersonaDirty(user.ID); err != nil {
		log.Error("Failed to mark persona dirty", "userId", user.ID, "error", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Journal entry created for date: %s", entry.Date.Format("2006-01-02")),
		&user.ID,
	)

	return s.toResponse(entry, user), nil
}

func (s *JournalService) GetEntries(user *users_models.User) (*ListEntriesResponseDTO, error) {
	entries, err := s.repository.GetByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}

	return s.toListResponse(entries, user), nil
}

func (s *JournalService) GetEntry(
	user *users_models.User,
	entryID uuid.UUID,
) (*EntryResponseDTO, error) {
	entry, err := s.repository.GetByID(user.ID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entry: %w", err)
	}

	if entry == nil {
		return nil, ErrEntryNotFound
	}

	return s.toResponse(entry, user), nil
}

// GetEntriesByMonth returns the calendar view: all entries whose date falls
// in the given month, oldest first. Month is 1-based.
func (s *JournalService) GetEntriesByMonth(
	user *users_models.User,
	year, month int,
) (*ListEntriesResponseDTO, error) {
	if month < 1 || month > 12 {
		return nil, errors.New("month must be between 1 and 12")
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	entries, err := s.repository.GetByUserAndDateRange(user.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entries: %w", err)
	}

	return s.toListResponse(entries, user), nil
}

func (s *JournalService) UpdateEntry(
	user *users_models.User,
	entryID uuid.UUID,
	request *SaveEntryRequestDTO,
) (*EntryResponseDTO, error) {
	entry, err := s.repository.GetByID(user.ID, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch journal entry: %w", err)
	}

	if entry == nil {
		return nil, ErrEntryNotFound
	}

	date, err := parseEntryDate(request.Date)
	if err != nil {
		return nil, err
	}

	// envelopes are never mutated in place; re-encrypt and replace
	encryptedTitle, err := encryption.Encrypt(request.Title, user.EncryptionSecret())
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt title: %w", err)
	}

	encryptedContent, err := encryption.Encrypt(request.Content, user.EncryptionSecret())
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt content: %w", err)
	}

	entry.EncryptedTitle = encryptedTitle
	entry.EncryptedContent = encryptedContent
	entry.Date = date
	entry.UpdatedAt = time.Now().UTC()

	if err := s.repository.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update journal entry: %w", err)
	}

	if err := s.userService.MarkPersonaDirty(user.ID); err != nil {
		log.Error("Failed to mark persona dirty", "userId", user.ID, "error", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Journal entry updated (ID: %s)", entry.ID),
		&user.ID,
	)

	return s.toResponse(entry, user), nil
}

func (s *JournalService) DeleteEntry(user *users_models.User, entryID uuid.UUID) error {
	deleted, err := s.repository.Delete(user.ID, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}

	if !deleted {
		return ErrEntryNotFound
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Journal entry deleted (ID: %s)", entryID),
		&user.ID,
	)

	return nil
}

// DecryptedDigest renders the user's entries as plain text for the persona
// sync job. Undecryptable entries are skipped rather than aborting the
// whole digest.
func (s *JournalService) DecryptedDigest(user *users_models.User) (string, error) {
	entries, err := s.repository.GetByUser(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch journal entries: %w", err)
	}

	digest := ""
	for _, entry := range entries {
		title, err := encryption.Decrypt(entry.EncryptedTitle, user.EncryptionSecret())
		if err != nil {
			continue
		}

		content, err := encryption.Decrypt(entry.EncryptedContent, user.EncryptionSecret())
		if err != nil {
			continue
		}

		digest += fmt.Sprintf("%s: %s\n%s\n\n", entry.Date.Format("2006-01-02"), title, content)
	}

	return digest, nil
}

func (s *JournalService) toResponse(
	entry *JournalEntry,
	user *users_models.User,
) *EntryResponseDTO {
	return &EntryResponseDTO{
		ID:        entry.ID,
		Title:     encryption.DecryptOrFallback(entry.EncryptedTitle, user.EncryptionSecret(), titlePlaceholder),
		Content:   encryption.DecryptOrFallback(entry.EncryptedContent, user.EncryptionSecret(), contentPlaceholder),
		Date:      entry.Date,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

func (s *JournalService) toListResponse(
	entries []*JournalEntry,
	user *users_models.User,
) *ListEntriesResponseDTO {
	response := &ListEntriesResponseDTO{Entries: make([]*EntryResponseDTO, 0, len(entries))}
	for _, entry := range entries {
		response.Entries = append(response.Entries, s.toResponse(entry, user))
	}

	return response
}

func parseEntryDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		// datetime form used by the calendar view
		date, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, errors.New("date must be YYYY-MM-DD or RFC3339")
		}
	}

	return date.UTC(), nil
}
