package avatar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildSystemInstruction_InterviewModeEmbedsRemainingQuestions(t *testing.T) {
	instruction := BuildSystemInstruction("Ravi", -1)

	assert.Contains(t, instruction, "Ravi")
	assert.Contains(t, instruction, "get_question")
	for _, question := range RemainingQuestions(-1) {
		assert.Contains(t, instruction, question)
	}
}

func Test_BuildSystemInstruction_SkipsAnsweredQuestions(t *testing.T) {
	instruction := BuildSystemInstruction("Ravi", 0)

	assert.NotContains(t, instruction, questions[0])
	assert.Contains(t, instruction, questions[1])
}

func Test_BuildSystemInstruction_TalkModeWhenComplete(t *testing.T) {
	instruction := BuildSystemInstruction("Ravi", QuestionCount()-1)

	assert.Contains(t, instruction, "wellbeing")
	assert.NotContains(t, instruction, "get_question")
	assert.False(t, strings.Contains(instruction, questions[0]))
}

func Test_BuildSystemInstruction_EmptyNameFallsBack(t *testing.T) {
	instruction := BuildSystemInstruction("", -1)

	assert.Contains(t, instruction, "Friend")
}
