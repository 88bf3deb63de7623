package avatar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NextQuestion_PostsAnswerAndReturnsQuestion(t *testing.T) {
	userID := uuid.New()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/api/questions/next/"+userID.String()))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "I slept well and feel fine", body["user_response"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":"Are you carrying your helmet today?"}`))
	}))
	defer upstream.Close()

	client := NewQuestionBankClient(upstream.URL)

	question, err := client.NextQuestion(userID, "I slept well and feel fine")
	require.NoError(t, err)
	assert.Equal(t, "Are you carrying your helmet today?", question)
}

func Test_NextQuestion_EmptyDataMeansExhausted(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":""}`))
	}))
	defer upstream.Close()

	client := NewQuestionBankClient(upstream.URL)

	question, err := client.NextQuestion(uuid.New(), "done")
	require.NoError(t, err)
	assert.Empty(t, question)
}

func Test_NextQuestion_UpstreamErrorSurfaces(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	client := NewQuestionBankClient(upstream.URL)

	_, err := client.NextQuestion(uuid.New(), "answer")
	assert.Error(t, err)
}

func Test_NextQuestion_UnreachableServiceErrors(t *testing.T) {
	client := NewQuestionBankClient("http://127.0.0.1:1")

	_, err := client.NextQuestion(uuid.New(), "answer")
	assert.Error(t, err)
}
