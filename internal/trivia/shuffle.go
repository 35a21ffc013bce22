package trivia

import "math/rand"

// AnswerChoice is one rendered answer.
type AnswerChoice struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// Shuffler places the correct answer among the wrong ones.
type Shuffler struct {
	intn func(n int) int
}

// NewShuffler uses intn to draw positions; intn(n) must return a uniform
// value in [0, n). A nil intn falls back to math/rand.
func NewShuffler(intn func(n int) int) *Shuffler {
	if intn == nil {
		intn = rand.Intn
	}
	return &Shuffler{intn: intn}
}

// Layout keeps the wrong answers in order and inserts the correct answer at
// a position drawn uniformly from [0, len(wrong)]. Every call draws again.
func (s *Shuffler) Layout(q Question) []AnswerChoice {
	position := s.intn(len(q.WrongAnswers) + 1)

	choices := make([]AnswerChoice, 0, len(q.WrongAnswers)+1)
	for idx, wrong := range q.WrongAnswers {
		if idx == position {
			choices = append(choices, AnswerChoice{Text: q.CorrectAnswer, IsCorrect: true})
		}
		choices = append(choices, AnswerChoice{Text: wrong})
	}
	if position == len(q.WrongAnswers) {
		choices = append(choices, AnswerChoice{Text: q.CorrectAnswer, IsCorrect: true})
	}
	return choices
}

// CorrectIndex returns the position of the correct answer, or -1.
func CorrectIndex(choices []AnswerChoice) int {
	for idx, choice := range choices {
		if choice.IsCorrect {
			return idx
		}
	}
	return -1
}
