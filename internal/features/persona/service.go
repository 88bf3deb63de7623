package persona

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"safetybot-backend/internal/features/journal"
	users_models "safetybot-backend/internal/features/users/models"
	users_services "safetybot-backend/internal/features/users/services"
	"safetybot-backend/internal/util/logger"
)

var log = logger.GetLogger()

// SyncService pushes decrypted journal digests of flagged users to the
// external persona service, clearing the flag on success.
type SyncService struct {
	userService    *users_services.UserService
	journalService *journal.JournalService
	baseURL        string
	httpClient     *http.Client
}

func NewSyncService(
	userService *users_services.UserService,
	journalService *journal.JournalService,
	baseURL string,
) *SyncService {
	return &SyncService{
		userService:    userService,
		journalService: journalService,
		baseURL:        baseURL,
		httpClient:     &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *SyncService) SetBaseURL(baseURL string) {
	s.baseURL = baseURL
}

type personaPayload struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	JournalDigest string `json:"journal_digest"`
}

// SyncDirtyUsers runs one sweep. A failing user is logged and stays
// flagged for the next run.
func (s *SyncService) SyncDirtyUsers() {
	if s.baseURL == "" {
		return
	}

	users, err := s.userService.GetUsersWithDirtyPersona()
	if err != nil {
		log.Error("Failed to list users for persona sync", "error", err)
		return
	}

	for _, user := range users {
		if err := s.syncUser(user); err != nil {
			log.Error("Persona sync failed", "userId", user.ID, "error", err)
			continue
		}

		if err := s.userService.ClearPersonaDirty(user.ID); err != nil {
			log.Error("Failed to clear persona flag", "userId", user.ID, "error", err)
		}
	}
}

func (s *SyncService) syncUser(user *users_models.User) error {
	digest, err := s.journalService.DecryptedDigest(user)
	if err != nil {
		return fmt.Errorf("failed to build journal digest: %w", err)
	}

	payload, err := json.Marshal(personaPayload{
		UserID:        user.ID.String(),
		Email:         user.Email,
		JournalDigest: digest,
	})
	if err != nil {
		return fmt.Errorf("failed to encode persona payload: %w", err)
	}

	resp, err := s.httpClient.Post(
		s.baseURL+"/update_persona",
		"application/json",
		bytes.NewReader(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to reach persona service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("persona service responded with status %d", resp.StatusCode)
	}

	return nil
}
