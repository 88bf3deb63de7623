package translation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxTextLength = 5000

var ErrTextLength = errors.New("invalid input length (1-5000 characters required)")
var ErrTargetRequired = errors.New("targetLanguage is required")

// TranslationService proxies single-string translations to the Google
// Translate v2 REST API.
type TranslationService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewTranslationService(baseURL, apiKey string) *TranslationService {
	return &TranslationService{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *TranslationService) SetBaseURL(baseURL string) {
	s.baseURL = baseURL
}

type upstreamResponse struct {
	Data struct {
		Translations []TranslationDTO `json:"translations"`
	} `json:"data"`
}

// Translate validates the request and returns the first translation
// result from the upstream API.
func (s *TranslationService) Translate(request *TranslateRequestDTO) (*TranslationDTO, error) {
	if len(request.Text) < 1 || len(request.Text) > maxTextLength {
		return nil, ErrTextLength
	}
	if request.TargetLanguage == "" {
		return nil, ErrTargetRequired
	}

	source := request.SourceLanguage
	if source == "" {
		source = "auto"
	}

	payload, err := json.Marshal(map[string]string{
		"q":      request.Text,
		"target": request.TargetLanguage,
		"source": source,
		"format": "text",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode translation request: %w", err)
	}

	resp, err := s.httpClient.Post(
		s.baseURL+"?key="+s.apiKey,
		"application/json",
		bytes.NewReader(payload),
	)
	if err != nil {
		return nil, &UpstreamError{Status: 0, Details: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Status: resp.StatusCode, Details: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Status: resp.StatusCode, Details: string(body)}
	}

	var parsed upstreamResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &UpstreamError{Status: resp.StatusCode, Details: "malformed translation response"}
	}
	if len(parsed.Data.Translations) == 0 {
		return nil, &UpstreamError{Status: resp.StatusCode, Details: "empty translation response"}
	}

	return &parsed.Data.Translations[0], nil
}

// UpstreamError carries the upstream HTTP status so the controller can
// pick between 502 and a mirrored status.
type UpstreamError struct {
	Status  int
	Details string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("translation upstream error (status %d): %s", e.Status, e.Details)
}
