package translation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	users_testing "safetybot-backend/internal/features/users/testing"
	test_utils "safetybot-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTranslateUpstream(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)
	GetTranslationService().SetBaseURL(upstream.URL)
}

func Test_Translate_ReturnsFirstTranslation(t *testing.T) {
	var receivedQuery string
	startTranslateUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		receivedQuery = body["q"]
		assert.Equal(t, "hi", body["target"])
		assert.Equal(t, "auto", body["source"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": {
				"translations": [
					{"translatedText": "सुरक्षा पहले", "detectedSourceLanguage": "en"},
					{"translatedText": "ignored"}
				]
			}
		}`))
	})

	router := users_testing.CreateTestRouter(GetTranslationController())
	user := users_testing.CreateTestUser()

	var result TranslationDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/translation",
		"Bearer "+user.Token,
		TranslateRequestDTO{Text: "Safety first", TargetLanguage: "hi"},
		http.StatusOK,
		&result,
	)

	assert.Equal(t, "Safety first", receivedQuery)
	assert.Equal(t, "सुरक्षा पहले", result.TranslatedText)
	assert.Equal(t, "en", result.DetectedSourceLanguage)
}

func Test_Translate_TextLengthBoundaries(t *testing.T) {
	var forwarded bool
	startTranslateUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		forwarded = true
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"ok"}]}}`))
	})

	router := users_testing.CreateTestRouter(GetTranslationController())
	user := users_testing.CreateTestUser()

	// 5001 characters is rejected without touching the upstream
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/translation",
		"Bearer "+user.Token,
		TranslateRequestDTO{Text: strings.Repeat("a", 5001), TargetLanguage: "hi"},
		http.StatusBadRequest,
	)
	assert.False(t, forwarded)

	// empty text is rejected too
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/translation",
		"Bearer "+user.Token,
		TranslateRequestDTO{Text: "", TargetLanguage: "hi"},
		http.StatusBadRequest,
	)
	assert.False(t, forwarded)

	// exactly 5000 characters is forwarded
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/translation",
		"Bearer "+user.Token,
		TranslateRequestDTO{Text: strings.Repeat("a", 5000), TargetLanguage: "hi"},
		http.StatusOK,
	)
	assert.True(t, forwarded)
}

func Test_Translate_MissingTargetLanguage(t *testing.T) {
	router := users_testing.CreateTestRouter(GetTranslationController())
	user := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/translation",
		"Bearer "+user.Token,
		TranslateRequestDTO{Text: "hello"},
		http.StatusBadRequest,
	)
}

func Test_Translate_UpstreamFailureReturnsErrorEnvelope(t *testing.T) {
	startTranslateUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid key"}}`))
	})

	router := users_testing.CreateTestRouter(GetTranslationController())
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/translation",
		"Bearer "+user.Token,
		TranslateRequestDTO{Text: "hello", TargetLanguage: "hi"},
		http.StatusForbidden,
	)

	var envelope ErrorResponseDTO
	require.NoError(t, json.Unmarshal(resp.Body, &envelope))
	assert.Equal(t, "Translation failed", envelope.Error)
	assert.NotEmpty(t, envelope.Details)
}

func Test_Translate_UnreachableUpstreamReturns502(t *testing.T) {
	GetTranslationService().SetBaseURL("http://127.0.0.1:1")

	router := users_testing.CreateTestRouter(GetTranslationController())
	user := users_testing.CreateTestUser()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/translation",
		"Bearer "+user.Token,
		TranslateRequestDTO{Text: "hello", TargetLanguage: "hi"},
		http.StatusBadGateway,
	)
}
