package journal

import (
	"net/http"
	"testing"

	users_testing "safetybot-backend/internal/features/users/testing"
	test_utils "safetybot-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CreateAndFetchEntry_RoundTripsPlaintext(t *testing.T) {
	router := users_testing.CreateTestRouter(GetJournalController())
	user := users_testing.CreateTestUser()

	request := SaveEntryRequestDTO{
		Title:   "Day 1",
		Content: "Felt good",
		Date:    "2025-04-01",
	}

	var created EntryResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/journal/entries",
		"Bearer "+user.Token,
		request,
		http.StatusOK,
		&created,
	)

	assert.Equal(t, "Day 1", created.Title)
	assert.Equal(t, "Felt good", created.Content)

	// stored record holds only envelopes
	stored, err := journalRepository.GetByID(user.UserID, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "Day 1", stored.EncryptedTitle)
	assert.NotEqual(t, "Felt good", stored.EncryptedContent)
	assert.NotEmpty(t, stored.EncryptedTitle)
	assert.NotEmpty(t, stored.EncryptedContent)

	var fetched EntryResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/journal/entries/"+created.ID.String(),
		"Bearer "+user.Token,
		http.StatusOK,
		&fetched,
	)

	assert.Equal(t, "Day 1", fetched.Title)
	assert.Equal(t, "Felt good", fetched.Content)
}

func Test_UpdateEntry_ReplacesEnvelopes(t *testing.T) {
	router := users_testing.CreateTestRouter(GetJournalController())
	user := users_testing.CreateTestUser()

	var created EntryResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/journal/entries",
		"Bearer "+user.Token,
		SaveEntryRequestDTO{Title: "Before", Content: "Old content", Date: "2025-04-02"},
		http.StatusOK,
		&created,
	)

	before, err := journalRepository.GetByID(user.UserID, created.ID)
	require.NoError(t, err)

	var updated EntryResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/journal/entries/"+created.ID.String(),
		"Bearer "+user.Token,
		SaveEntryRequestDTO{Title: "After", Content: "New content", Date: "2025-04-02"},
		http.StatusOK,
		&updated,
	)

	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "New content", updated.Content)

	after, err := journalRepository.GetByID(user.UserID, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, before.EncryptedTitle, after.EncryptedTitle)
	assert.NotEqual(t, before.EncryptedContent, after.EncryptedContent)
}

func Test_GetEntries_OtherUsersEntriesInvisible(t *testing.T) {
	router := users_testing.CreateTestRouter(GetJournalController())
	owner := users_testing.CreateTestUser()
	other := users_testing.CreateTestUser()

	var created EntryResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/journal/entries",
		"Bearer "+owner.Token,
		SaveEntryRequestDTO{Title: "Private", Content: "Owner only", Date: "2025-04-03"},
		http.StatusOK,
		&created,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/journal/entries/"+created.ID.String(),
		"Bearer "+other.Token,
		http.StatusNotFound,
	)

	var listing ListEntriesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/journal/entries",
		"Bearer "+other.Token,
		http.StatusOK,
		&listing,
	)

	for _, entry := range listing.Entries {
		assert.NotEqual(t, created.ID, entry.ID)
	}
}

func Test_GetEntriesByMonth_FiltersByDateRange(t *testing.T) {
	router := users_testing.CreateTestRouter(GetJournalController())
	user := users_testing.CreateTestUser()

	entries := []SaveEntryRequestDTO{
		{Title: "March entry", Content: "x", Date: "2025-03-31"},
		{Title: "April entry", Content: "y", Date: "2025-04-15"},
		{Title: "May entry", Content: "z", Date: "2025-05-01"},
	}
	for _, request := range entries {
		test_utils.MakePostRequest(
			t,
			router,
			"/api/v1/journal/entries",
			"Bearer "+user.Token,
			request,
			http.StatusOK,
		)
	}

	var response ListEntriesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/journal/calendar?year=2025&month=4",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	require.Len(t, response.Entries, 1)
	assert.Equal(t, "April entry", response.Entries[0].Title)
}

func Test_JournalRoutes_RequireAuth(t *testing.T) {
	router := users_testing.CreateTestRouter(GetJournalController())

	test_utils.MakeGetRequest(t, router, "/api/v1/journal/entries", "", http.StatusUnauthorized)
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/journal/entries",
		"",
		SaveEntryRequestDTO{Title: "t", Content: "c", Date: "2025-04-01"},
		http.StatusUnauthorized,
	)
}
