package persona

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"safetybot-backend/internal/features/journal"
	users_services "safetybot-backend/internal/features/users/services"
	users_testing "safetybot-backend/internal/features/users/testing"
	test_utils "safetybot-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SyncDirtyUsers_PushesDigestAndClearsFlag(t *testing.T) {
	router := users_testing.CreateTestRouter(journal.GetJournalController())
	user := users_testing.CreateTestUser()

	// a journal write marks the persona dirty
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/journal/entries",
		"Bearer "+user.Token,
		journal.SaveEntryRequestDTO{
			Title:   "Night shift",
			Content: "Completed the transformer inspection",
			Date:    "2025-05-10",
		},
		http.StatusOK,
	)

	var payloads []map[string]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		payloads = append(payloads, payload)
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	service := NewSyncService(
		users_services.GetUserService(),
		journal.GetJournalService(),
		upstream.URL,
	)
	service.SyncDirtyUsers()

	var forUser *map[string]string
	for i := range payloads {
		if payloads[i]["user_id"] == user.UserID.String() {
			forUser = &payloads[i]
		}
	}
	require.NotNil(t, forUser, "persona service never saw the flagged user")
	assert.Contains(t, (*forUser)["journal_digest"], "Completed the transformer inspection")

	updated, err := users_services.GetUserService().GetUserByID(user.UserID)
	require.NoError(t, err)
	assert.False(t, updated.UpdatePersona)
}

func Test_SyncDirtyUsers_FailureLeavesFlagSet(t *testing.T) {
	router := users_testing.CreateTestRouter(journal.GetJournalController())
	user := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/journal/entries",
		"Bearer "+user.Token,
		journal.SaveEntryRequestDTO{Title: "t", Content: "c", Date: "2025-05-11"},
		http.StatusOK,
	)

	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	service := NewSyncService(
		users_services.GetUserService(),
		journal.GetJournalService(),
		upstream.URL,
	)
	service.SyncDirtyUsers()

	assert.Greater(t, calls.Load(), int32(0))

	updated, err := users_services.GetUserService().GetUserByID(user.UserID)
	require.NoError(t, err)
	assert.True(t, updated.UpdatePersona)
}
