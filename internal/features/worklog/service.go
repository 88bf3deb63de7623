package worklog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ReportService forwards worklog report requests to the external report
// generation service and normalizes its failure modes.
type ReportService struct {
	baseURL    string
	httpClient *http.Client
}

func NewReportService(baseURL string) *ReportService {
	return &ReportService{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *ReportService) SetBaseURL(baseURL string) {
	s.baseURL = baseURL
}

type reportRequest struct {
	AuthID  string `json:"authId"`
	Email   string `json:"email"`
	NumDays int    `json:"numdays"`
}

// FetchReport posts the validated request upstream. Returns the upstream
// status and parsed JSON body; a network failure or a non-JSON upstream
// body comes back as an error.
func (s *ReportService) FetchReport(authID, email string, numDays int) (int, json.RawMessage, error) {
	payload, err := json.Marshal(reportRequest{AuthID: authID, Email: email, NumDays: numDays})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encode report request: %w", err)
	}

	resp, err := s.httpClient.Post(
		s.baseURL+"/getworklogReport",
		"application/json",
		bytes.NewReader(payload),
	)
	if err != nil {
		return 0, nil, &NetworkError{Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &NetworkError{Cause: err}
	}

	if !json.Valid(body) {
		return resp.StatusCode, nil, &UpstreamParseError{Status: resp.StatusCode}
	}

	return resp.StatusCode, body, nil
}

type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to reach report service: %v", e.Cause)
}

type UpstreamParseError struct {
	Status int
}

func (e *UpstreamParseError) Error() string {
	return fmt.Sprintf("report service returned non-JSON body (status %d)", e.Status)
}
