package chat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ChatProxy forwards chat requests verbatim to the external report
// generation chatbot.
type ChatProxy struct {
	baseURL    string
	httpClient *http.Client
}

func NewChatProxy(baseURL string) *ChatProxy {
	return &ChatProxy{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *ChatProxy) SetBaseURL(baseURL string) {
	p.baseURL = baseURL
}

// Forward posts the raw body to the chatbot's /chat path and returns the
// upstream status and body. The body must already be validated.
func (p *ChatProxy) Forward(body []byte) (int, []byte, error) {
	resp, err := p.httpClient.Post(
		p.baseURL+"/chat",
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to reach chat service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read chat service response: %w", err)
	}

	return resp.StatusCode, data, nil
}

// hasAuthID reports whether the raw JSON body carries a non-empty authId.
func hasAuthID(body []byte) bool {
	var parsed struct {
		AuthID string `json:"authId"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return false
	}

	return parsed.AuthID != ""
}
