package avatar

import (
	"context"
	"sync"

	users_models "safetybot-backend/internal/features/users/models"
	users_services "safetybot-backend/internal/features/users/services"
	"safetybot-backend/internal/util/logger"

	"github.com/gorilla/websocket"
)

type SessionState string

const (
	SessionDisconnected SessionState = "disconnected"
	SessionConnecting   SessionState = "connecting"
	SessionConnected    SessionState = "connected"
)

var log = logger.GetLogger()

// browserMessage is one frame from the browser client.
type browserMessage struct {
	Type string `json:"type"`
	Data string `json:"data,omitempty"`
}

// browserEvent is one frame pushed to the browser client.
type browserEvent struct {
	Type     string `json:"type"`
	State    string `json:"state,omitempty"`
	Role     string `json:"role,omitempty"`
	Text     string `json:"text,omitempty"`
	Data     string `json:"data,omitempty"`
	Progress *int   `json:"progress,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Session bridges one browser websocket to one hosted live API session
// and runs the scripted interview protocol over it.
type Session struct {
	user         *users_models.User
	userService  *users_services.UserService
	questionBank *QuestionBankClient
	model        string
	liveURL      string
	apiKey       string

	browser *websocket.Conn
	live    *LiveClient
	fsm     *InterviewFSM

	mu       sync.Mutex
	state    SessionState
	writeMu  sync.Mutex
	frames   chan string
	cancelFn context.CancelFunc
}

func NewSession(
	user *users_models.User,
	userService *users_services.UserService,
	questionBank *QuestionBankClient,
	model, liveURL, apiKey string,
	browser *websocket.Conn,
) *Session {
	return &Session{
		user:         user,
		userService:  userService,
		questionBank: questionBank,
		model:        model,
		liveURL:      liveURL,
		apiKey:       apiKey,
		browser:      browser,
		state:        SessionDisconnected,
		frames:       make(chan string, 64),
	}
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.sendToBrowser(browserEvent{Type: "state", State: string(state)})
}

// Run drives the session until the browser disconnects or the upstream
// closes. Always leaves the session disconnected.
func (s *Session) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancelFn = cancel
	defer cancel()
	defer s.setState(SessionDisconnected)

	s.setState(SessionConnecting)

	live, err := DialLive(ctx, s.liveURL, s.apiKey)
	if err != nil {
		log.Error("Failed to connect to live API", "userId", s.user.ID, "error", err)
		s.sendToBrowser(browserEvent{Type: "error", Message: "Failed to connect to live session"})
		return
	}
	s.live = live
	defer live.Close()

	s.fsm = NewInterviewFSM(s.user.Progress, QuestionCount())

	instruction := BuildSystemInstruction(s.user.DisplayName, s.user.Progress)
	if err := live.SendSetup(s.model, instruction); err != nil {
		log.Error("Failed to send live session setup", "userId", s.user.ID, "error", err)
		s.sendToBrowser(browserEvent{Type: "error", Message: "Failed to configure live session"})
		return
	}

	s.setState(SessionConnected)
	s.notifyInterviewState()

	// the forwarder owns all audio writes upstream; cancelling the
	// context stops it immediately, buffered frames are dropped
	go s.forwardAudio(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.readBrowser(ctx)
	}()

	s.readUpstream(ctx)
	cancel()
	<-done
}

// Disconnect tears the session down from outside.
func (s *Session) Disconnect() {
	if s.cancelFn != nil {
		s.cancelFn()
	}
	if s.live != nil {
		_ = s.live.Close()
	}
}

func (s *Session) forwardAudio(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case frame := <-s.frames:
			if err := s.live.SendAudioChunk(frame); err != nil {
				log.Error("Failed to forward audio frame", "userId", s.user.ID, "error", err)
				return
			}
		}
	}
}

func (s *Session) readBrowser(ctx context.Context) {
	for {
		var message browserMessage
		if err := s.browser.ReadJSON(&message); err != nil {
			s.Disconnect()
			return
		}

		switch message.Type {
		case "audio":
			select {
			case s.frames <- message.Data:
			case <-ctx.Done():
				return
			default:
				// drop the frame rather than stall the reader
			}
		case "disconnect":
			s.Disconnect()
			return
		}
	}
}

func (s *Session) readUpstream(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		message, err := s.live.ReadMessage()
		if err != nil {
			if ctx.Err() == nil {
				log.Info("Live session closed by upstream", "userId", s.user.ID)
			}
			return
		}

		switch {
		case message.ToolCall != nil:
			s.handleToolCall(message.ToolCall)
		case message.ServerContent != nil:
			s.handleServerContent(message.ServerContent)
		}
	}
}

func (s *Session) handleServerContent(content *ServerContent) {
	if content.InputTranscription != nil && content.InputTranscription.Text != "" {
		s.sendToBrowser(browserEvent{Type: "transcript", Role: "user", Text: content.InputTranscription.Text})
	}
	if content.OutputTranscription != nil && content.OutputTranscription.Text != "" {
		s.sendToBrowser(browserEvent{Type: "transcript", Role: "assistant", Text: content.OutputTranscription.Text})
	}
	if content.ModelTurn != nil {
		for _, part := range content.ModelTurn.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				s.sendToBrowser(browserEvent{Type: "audio", Data: part.InlineData.Data})
			}
		}
	}
	if content.TurnComplete {
		s.sendToBrowser(browserEvent{Type: "turnComplete"})
	}
}

// handleToolCall answers get_question calls by advancing the interview
// and fetching the next question from the question bank.
func (s *Session) handleToolCall(toolCall *ToolCall) {
	responses := make([]FunctionResponse, 0, len(toolCall.FunctionCalls))
	for _, call := range toolCall.FunctionCalls {
		output := exhaustedToolResponse

		if call.Name == "get_question" && s.fsm.State() != StateInterviewComplete {
			answer, _ := call.Args["user_current_answer"].(string)

			question, err := s.questionBank.NextQuestion(s.user.ID, answer)
			if err != nil {
				// leave progress untouched and let the model carry on
				// with open conversation
				log.Error("Question bank unreachable, falling back to free-form chat",
					"userId", s.user.ID, "error", err)
			} else if question == "" {
				s.fsm.Complete()
				s.persistProgress()
			} else {
				s.advanceInterview()
				output = question
			}
		}

		responses = append(responses, FunctionResponse{
			ID:       call.ID,
			Name:     call.Name,
			Response: map[string]any{"output": output},
		})
	}

	if err := s.live.SendToolResponse(responses); err != nil {
		log.Error("Failed to send tool response", "userId", s.user.ID, "error", err)
		return
	}

	s.notifyInterviewState()
}

func (s *Session) advanceInterview() {
	if s.fsm.State() == StateAwaitingQuestion {
		_ = s.fsm.QuestionIssued()
	}
	if _, err := s.fsm.AnswerReceived(); err != nil {
		return
	}

	s.persistProgress()
}

func (s *Session) persistProgress() {
	if err := s.userService.UpdateProgress(s.user.ID, s.fsm.Progress()); err != nil {
		log.Error("Failed to persist interview progress", "userId", s.user.ID, "error", err)
	}
}

func (s *Session) notifyInterviewState() {
	progress := s.fsm.Progress()
	s.sendToBrowser(browserEvent{
		Type:     "interview",
		State:    string(s.fsm.State()),
		Progress: &progress,
	})
}

func (s *Session) sendToBrowser(event browserEvent) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.browser.WriteJSON(event); err != nil {
		log.Debug("Failed to write to browser socket", "userId", s.user.ID, "error", err)
	}
}
