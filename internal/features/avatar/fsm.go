package avatar

import (
	"errors"
	"sync"
)

type InterviewState string

const (
	StateAwaitingQuestion  InterviewState = "awaiting_question"
	StateAwaitingAnswer    InterviewState = "awaiting_answer"
	StateInterviewComplete InterviewState = "interview_complete"
)

var ErrNotAwaitingQuestion = errors.New("no question can be issued in the current state")
var ErrNotAwaitingAnswer = errors.New("no answer expected in the current state")

// InterviewFSM tracks the scripted safety interview for one session.
// Progress is the index of the last answered question (-1 = none).
type InterviewFSM struct {
	mu       sync.Mutex
	state    InterviewState
	progress int
	total    int
}

func NewInterviewFSM(progress, totalQuestions int) *InterviewFSM {
	fsm := &InterviewFSM{
		progress: progress,
		total:    totalQuestions,
	}

	if progress+1 >= totalQuestions {
		fsm.state = StateInterviewComplete
	} else {
		fsm.state = StateAwaitingQuestion
	}

	return fsm
}

func (m *InterviewFSM) State() InterviewState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *InterviewFSM) Progress() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress
}

// QuestionIssued records that a question was put to the user.
func (m *InterviewFSM) QuestionIssued() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateAwaitingQuestion {
		return ErrNotAwaitingQuestion
	}

	m.state = StateAwaitingAnswer
	return nil
}

// AnswerReceived consumes the user's answer, advancing the progress
// index. Returns the resulting state.
func (m *InterviewFSM) AnswerReceived() (InterviewState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateAwaitingAnswer {
		return m.state, ErrNotAwaitingAnswer
	}

	m.progress++
	if m.progress+1 >= m.total {
		m.state = StateInterviewComplete
	} else {
		m.state = StateAwaitingQuestion
	}

	return m.state, nil
}

// Complete forces the interview into its terminal state, used when the
// question bank reports the script exhausted ahead of the local count.
func (m *InterviewFSM) Complete() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateInterviewComplete
}
