package avatar

import (
	_ "embed"
	"encoding/json"
)

//go:embed questions.json
var questionsJSON []byte

// questions is the ordered safety interview script. The progress index
// stored per user points at the last question answered (-1 = none).
var questions = loadQuestions()

func loadQuestions() []string {
	var loaded []string
	if err := json.Unmarshal(questionsJSON, &loaded); err != nil {
		panic("avatar: invalid questions.json: " + err.Error())
	}

	return loaded
}

func QuestionCount() int {
	return len(questions)
}

// RemainingQuestions returns the questions not yet answered for a
// progress index, in interview order.
func RemainingQuestions(progress int) []string {
	next := progress + 1
	if next < 0 {
		next = 0
	}
	if next >= len(questions) {
		return []string{}
	}

	return questions[next:]
}
