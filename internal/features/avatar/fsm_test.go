package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_InterviewFSM_FreshUserStartsAwaitingQuestion(t *testing.T) {
	fsm := NewInterviewFSM(-1, 3)

	assert.Equal(t, StateAwaitingQuestion, fsm.State())
	assert.Equal(t, -1, fsm.Progress())
}

func Test_InterviewFSM_FullRun(t *testing.T) {
	fsm := NewInterviewFSM(-1, 3)

	// Q0
	require.NoError(t, fsm.QuestionIssued())
	assert.Equal(t, StateAwaitingAnswer, fsm.State())
	state, err := fsm.AnswerReceived()
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingQuestion, state)
	assert.Equal(t, 0, fsm.Progress())

	// Q1
	require.NoError(t, fsm.QuestionIssued())
	state, err = fsm.AnswerReceived()
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingQuestion, state)

	// Q2 is the last question; answering it completes the interview
	require.NoError(t, fsm.QuestionIssued())
	state, err = fsm.AnswerReceived()
	require.NoError(t, err)
	assert.Equal(t, StateInterviewComplete, state)
	assert.Equal(t, 2, fsm.Progress())
}

func Test_InterviewFSM_CompletedUserStartsComplete(t *testing.T) {
	fsm := NewInterviewFSM(2, 3)

	assert.Equal(t, StateInterviewComplete, fsm.State())
	assert.Error(t, fsm.QuestionIssued())

	_, err := fsm.AnswerReceived()
	assert.ErrorIs(t, err, ErrNotAwaitingAnswer)
}

func Test_InterviewFSM_AnswerWithoutQuestionRejected(t *testing.T) {
	fsm := NewInterviewFSM(-1, 3)

	state, err := fsm.AnswerReceived()
	assert.ErrorIs(t, err, ErrNotAwaitingAnswer)
	assert.Equal(t, StateAwaitingQuestion, state)
	assert.Equal(t, -1, fsm.Progress())
}

func Test_InterviewFSM_DoubleQuestionIssueRejected(t *testing.T) {
	fsm := NewInterviewFSM(-1, 3)

	require.NoError(t, fsm.QuestionIssued())
	assert.ErrorIs(t, fsm.QuestionIssued(), ErrNotAwaitingQuestion)
}

func Test_RemainingQuestions(t *testing.T) {
	total := QuestionCount()
	require.Greater(t, total, 0)

	assert.Len(t, RemainingQuestions(-1), total)
	assert.Len(t, RemainingQuestions(0), total-1)
	assert.Empty(t, RemainingQuestions(total-1))
	assert.Empty(t, RemainingQuestions(total+5))
}
