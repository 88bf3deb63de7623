package worklog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	users_testing "safetybot-backend/internal/features/users/testing"
	test_utils "safetybot-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startReportUpstream(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)
	GetReportService().SetBaseURL(upstream.URL)
}

func assertErrorCode(t *testing.T, body []byte, expectedCode string) {
	t.Helper()

	var envelope ErrorResponseDTO
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, expectedCode, envelope.ErrorCode)
}

func Test_GetReport_NumDaysBoundaries(t *testing.T) {
	startReportUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"report":"ok"}`))
	})

	router := users_testing.CreateTestRouter(GetReportController())
	user := users_testing.CreateTestUser()

	rejected := []string{
		`{"authId":"a","email":"e@x.com","numdays":0}`,
		`{"authId":"a","email":"e@x.com","numdays":366}`,
		`{"authId":"a","email":"e@x.com","numdays":"30"}`,
	}
	for _, payload := range rejected {
		resp := test_utils.MakePostRequest(
			t,
			router,
			"/api/v1/worklog/report",
			"Bearer "+user.Token,
			payload,
			http.StatusBadRequest,
		)
		assertErrorCode(t, resp.Body, CodeValidationError)
	}

	for _, numDays := range []int{1, 365} {
		test_utils.MakePostRequest(
			t,
			router,
			"/api/v1/worklog/report",
			"Bearer "+user.Token,
			fmt.Sprintf(`{"authId":"a","email":"e@x.com","numdays":%d}`, numDays),
			http.StatusOK,
		)
	}
}

func Test_GetReport_MissingFields(t *testing.T) {
	router := users_testing.CreateTestRouter(GetReportController())
	user := users_testing.CreateTestUser()

	payloads := []string{
		`{"email":"e@x.com","numdays":30}`,
		`{"authId":"a","numdays":30}`,
		`{"authId":"a","email":"e@x.com"}`,
	}
	for _, payload := range payloads {
		resp := test_utils.MakePostRequest(
			t,
			router,
			"/api/v1/worklog/report",
			"Bearer "+user.Token,
			payload,
			http.StatusBadRequest,
		)
		assertErrorCode(t, resp.Body, CodeValidationError)
	}
}

func Test_GetReport_MalformedJSONBody(t *testing.T) {
	router := users_testing.CreateTestRouter(GetReportController())
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/worklog/report",
		"Bearer "+user.Token,
		`{"authId": not-json`,
		http.StatusBadRequest,
	)
	assertErrorCode(t, resp.Body, CodeParseError)
}

func Test_GetReport_ForwardsUpstreamPayload(t *testing.T) {
	startReportUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "worker-1", body["authId"])
		assert.Equal(t, "worker@example.com", body["email"])
		assert.Equal(t, float64(30), body["numdays"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"report":"30 day summary"}`))
	})

	router := users_testing.CreateTestRouter(GetReportController())
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/worklog/report",
		"Bearer "+user.Token,
		`{"authId":"worker-1","email":"worker@example.com","numdays":30}`,
		http.StatusOK,
	)

	assert.JSONEq(t, `{"report":"30 day summary"}`, string(resp.Body))
}

func Test_GetReport_UpstreamErrorForwardedWithStatus(t *testing.T) {
	startReportUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"no data for user"}`))
	})

	router := users_testing.CreateTestRouter(GetReportController())
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/worklog/report",
		"Bearer "+user.Token,
		`{"authId":"a","email":"e@x.com","numdays":30}`,
		http.StatusUnprocessableEntity,
	)

	assert.JSONEq(t, `{"error":"no data for user"}`, string(resp.Body))
}

func Test_GetReport_NonJSONUpstreamIs502(t *testing.T) {
	startReportUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html>gateway timeout</html>`))
	})

	router := users_testing.CreateTestRouter(GetReportController())
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/worklog/report",
		"Bearer "+user.Token,
		`{"authId":"a","email":"e@x.com","numdays":30}`,
		http.StatusBadGateway,
	)
	assertErrorCode(t, resp.Body, CodeExternalAPIError)
}

func Test_GetReport_UnreachableUpstreamIs503(t *testing.T) {
	GetReportService().SetBaseURL("http://127.0.0.1:1")

	router := users_testing.CreateTestRouter(GetReportController())
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/worklog/report",
		"Bearer "+user.Token,
		`{"authId":"a","email":"e@x.com","numdays":30}`,
		http.StatusServiceUnavailable,
	)
	assertErrorCode(t, resp.Body, CodeNetworkError)
}
