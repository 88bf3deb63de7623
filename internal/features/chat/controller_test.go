package chat

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	users_testing "safetybot-backend/internal/features/users/testing"
	test_utils "safetybot-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ForwardChat_RequiresAuthID(t *testing.T) {
	router := users_testing.CreateTestRouter(GetChatController())
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/chat",
		"Bearer "+user.Token,
		map[string]any{"message": "hello"},
		http.StatusBadRequest,
	)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body, &body))
	assert.Equal(t, "authId is required", body["error"])
}

func Test_ForwardChat_ForwardsBodyVerbatim(t *testing.T) {
	var received []byte
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"hi there"}`))
	}))
	defer upstream.Close()

	GetChatProxy().SetBaseURL(upstream.URL)

	router := users_testing.CreateTestRouter(GetChatController())
	user := users_testing.CreateTestUser()

	payload := `{"authId":"abc-123","message":"hello","extra":{"nested":true}}`
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/chat",
		"Bearer "+user.Token,
		payload,
		http.StatusOK,
	)

	assert.JSONEq(t, payload, string(received))
	assert.JSONEq(t, `{"reply":"hi there"}`, string(resp.Body))
}

func Test_ForwardChat_MirrorsUpstreamErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"error":"upstream failure"}`))
	}))
	defer upstream.Close()

	GetChatProxy().SetBaseURL(upstream.URL)

	router := users_testing.CreateTestRouter(GetChatController())
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/chat",
		"Bearer "+user.Token,
		`{"authId":"abc-123"}`,
		http.StatusTeapot,
	)

	assert.JSONEq(t, `{"error":"upstream failure"}`, string(resp.Body))
}

func Test_ForwardChat_UnreachableUpstreamReturns502(t *testing.T) {
	GetChatProxy().SetBaseURL("http://127.0.0.1:1")

	router := users_testing.CreateTestRouter(GetChatController())
	user := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/chat",
		"Bearer "+user.Token,
		`{"authId":"abc-123"}`,
		http.StatusBadGateway,
	)
}

func Test_ChatHistory_RoundTripsPlaintext(t *testing.T) {
	router := users_testing.CreateTestRouter(GetChatController())
	user := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/chat/history",
		"Bearer "+user.Token,
		AppendMessageRequestDTO{Message: "How do I report a hazard?", Role: RoleUser},
		http.StatusOK,
	)
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/chat/history",
		"Bearer "+user.Token,
		AppendMessageRequestDTO{Message: "Use the incident form.", Role: RoleAssistant},
		http.StatusOK,
	)

	var history HistoryResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/chat/history", "Bearer "+user.Token, http.StatusOK, &history,
	)

	require.Len(t, history.Messages, 2)
	assert.Equal(t, RoleUser, history.Messages[0].Role)
	assert.Equal(t, "How do I report a hazard?", history.Messages[0].Message)
	assert.Equal(t, RoleAssistant, history.Messages[1].Role)
	assert.Equal(t, "Use the incident form.", history.Messages[1].Message)

	// stored only as envelopes
	stored, err := chatRepository.GetByUser(user.UserID)
	require.NoError(t, err)
	for _, message := range stored {
		assert.NotContains(t, message.EncryptedMessage, "hazard")
	}
}

func Test_ChatHistory_RejectsUnknownRole(t *testing.T) {
	router := users_testing.CreateTestRouter(GetChatController())
	user := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/chat/history",
		"Bearer "+user.Token,
		AppendMessageRequestDTO{Message: "hello", Role: "system"},
		http.StatusBadRequest,
	)
}

func Test_ClearHistory_RemovesAllMessages(t *testing.T) {
	router := users_testing.CreateTestRouter(GetChatController())
	user := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/chat/history",
		"Bearer "+user.Token,
		AppendMessageRequestDTO{Message: "temporary", Role: RoleUser},
		http.StatusOK,
	)

	test_utils.MakeDeleteRequest(
		t, router, "/api/v1/chat/history", "Bearer "+user.Token, http.StatusOK,
	)

	var history HistoryResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/chat/history", "Bearer "+user.Token, http.StatusOK, &history,
	)
	assert.Empty(t, history.Messages)
}
