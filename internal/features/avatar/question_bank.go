package avatar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// QuestionBankClient fetches the next scripted question from the external
// question-bank service, submitting the user's answer along the way.
type QuestionBankClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewQuestionBankClient(baseURL string) *QuestionBankClient {
	return &QuestionBankClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *QuestionBankClient) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

type nextQuestionRequest struct {
	UserResponse string `json:"user_response"`
}

type nextQuestionResponse struct {
	Data string `json:"data"`
}

// NextQuestion POSTs the user's answer and returns the next question
// text. An empty string means the question list is exhausted.
func (c *QuestionBankClient) NextQuestion(userID uuid.UUID, answer string) (string, error) {
	payload, err := json.Marshal(nextQuestionRequest{UserResponse: answer})
	if err != nil {
		return "", fmt.Errorf("failed to encode question request: %w", err)
	}

	resp, err := c.httpClient.Post(
		c.baseURL+"/api/questions/next/"+userID.String(),
		"application/json",
		bytes.NewReader(payload),
	)
	if err != nil {
		return "", fmt.Errorf("failed to reach question bank: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read question bank response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("question bank responded with status %d", resp.StatusCode)
	}

	var parsed nextQuestionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("malformed question bank response: %w", err)
	}

	return parsed.Data, nil
}
