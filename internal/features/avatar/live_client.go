package avatar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const liveVoiceName = "Leda"

// LiveClient speaks the bidirectional websocket protocol of the hosted
// generative-AI live API: one setup message, then interleaved realtime
// audio input, tool responses, and server events.
type LiveClient struct {
	conn *websocket.Conn
}

type liveSetupMessage struct {
	Setup liveSetup `json:"setup"`
}

type liveSetup struct {
	Model                    string          `json:"model"`
	GenerationConfig         generationConf  `json:"generationConfig"`
	SystemInstruction        *contentPart    `json:"systemInstruction,omitempty"`
	Tools                    []liveTool      `json:"tools,omitempty"`
	InputAudioTranscription  *struct{}       `json:"inputAudioTranscription,omitempty"`
	OutputAudioTranscription *struct{}       `json:"outputAudioTranscription,omitempty"`
}

type generationConf struct {
	ResponseModalities []string     `json:"responseModalities"`
	SpeechConfig       speechConfig `json:"speechConfig"`
}

type speechConfig struct {
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

type voiceConfig struct {
	PrebuiltVoiceConfig prebuiltVoice `json:"prebuiltVoiceConfig"`
}

type prebuiltVoice struct {
	VoiceName string `json:"voiceName"`
}

type contentPart struct {
	Parts []textPart `json:"parts"`
}

type textPart struct {
	Text string `json:"text"`
}

type liveTool struct {
	FunctionDeclarations []functionDeclaration `json:"functionDeclarations"`
}

type functionDeclaration struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type realtimeInputMessage struct {
	RealtimeInput realtimeInput `json:"realtimeInput"`
}

type realtimeInput struct {
	MediaChunks []mediaChunk `json:"mediaChunks"`
}

type mediaChunk struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type toolResponseMessage struct {
	ToolResponse toolResponse `json:"toolResponse"`
}

type toolResponse struct {
	FunctionResponses []FunctionResponse `json:"functionResponses"`
}

type FunctionResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

// ServerMessage is one event from the live API.
type ServerMessage struct {
	SetupComplete *struct{}      `json:"setupComplete,omitempty"`
	ServerContent *ServerContent `json:"serverContent,omitempty"`
	ToolCall      *ToolCall      `json:"toolCall,omitempty"`
}

type ServerContent struct {
	ModelTurn           *ModelTurn     `json:"modelTurn,omitempty"`
	InputTranscription  *Transcription `json:"inputTranscription,omitempty"`
	OutputTranscription *Transcription `json:"outputTranscription,omitempty"`
	TurnComplete        bool           `json:"turnComplete,omitempty"`
	Interrupted         bool           `json:"interrupted,omitempty"`
}

type ModelTurn struct {
	Parts []ModelPart `json:"parts"`
}

type ModelPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type Transcription struct {
	Text string `json:"text"`
}

type ToolCall struct {
	FunctionCalls []FunctionCall `json:"functionCalls"`
}

type FunctionCall struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// getQuestionDeclaration mirrors the tool contract the model is prompted
// to call between interview questions.
func getQuestionDeclaration() functionDeclaration {
	return functionDeclaration{
		Name:        "get_question",
		Description: "Gets next question to be asked to the user",
		Parameters: map[string]any{
			"type": "OBJECT",
			"properties": map[string]any{
				"user_current_answer": map[string]any{
					"type": "STRING",
					"description": "User response to current question, summarize the response " +
						"if multiple follow ups are asked for the same main question. " +
						"must be string not json.",
				},
			},
			"required": []string{},
		},
	}
}

// DialLive opens the websocket to the live API endpoint.
func DialLive(ctx context.Context, liveURL, apiKey string) (*LiveClient, error) {
	dialer := websocket.Dialer{HandshakeTimeout: 15 * time.Second}

	conn, resp, err := dialer.DialContext(ctx, liveURL+"?key="+apiKey, http.Header{})
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("live API handshake failed with status %d: %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to connect to live API: %w", err)
	}

	return &LiveClient{conn: conn}, nil
}

// SendSetup configures the session: model, audio-out with the fixed
// voice, transcription both ways, the interview system instruction and
// the get_question tool.
func (c *LiveClient) SendSetup(model, systemInstruction string) error {
	message := liveSetupMessage{
		Setup: liveSetup{
			Model: model,
			GenerationConfig: generationConf{
				ResponseModalities: []string{"AUDIO"},
				SpeechConfig: speechConfig{
					VoiceConfig: voiceConfig{
						PrebuiltVoiceConfig: prebuiltVoice{VoiceName: liveVoiceName},
					},
				},
			},
			SystemInstruction: &contentPart{
				Parts: []textPart{{Text: systemInstruction}},
			},
			Tools: []liveTool{
				{FunctionDeclarations: []functionDeclaration{getQuestionDeclaration()}},
			},
			InputAudioTranscription:  &struct{}{},
			OutputAudioTranscription: &struct{}{},
		},
	}

	return c.conn.WriteJSON(message)
}

// SendAudioChunk forwards one base64 PCM frame from the browser.
func (c *LiveClient) SendAudioChunk(base64Data string) error {
	return c.conn.WriteJSON(realtimeInputMessage{
		RealtimeInput: realtimeInput{
			MediaChunks: []mediaChunk{
				{MimeType: "audio/pcm;rate=16000", Data: base64Data},
			},
		},
	})
}

func (c *LiveClient) SendToolResponse(responses []FunctionResponse) error {
	return c.conn.WriteJSON(toolResponseMessage{
		ToolResponse: toolResponse{FunctionResponses: responses},
	})
}

// ReadMessage blocks for the next server event.
func (c *LiveClient) ReadMessage() (*ServerMessage, error) {
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}

	var message ServerMessage
	if err := json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("malformed live API message: %w", err)
	}

	return &message, nil
}

func (c *LiveClient) Close() error {
	return c.conn.Close()
}
