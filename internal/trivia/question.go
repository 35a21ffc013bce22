package trivia

import "trivia-app/internal/opentdb"

// Question is one decoded trivia record. Nothing in this package mutates a
// Question after it is built.
type Question struct {
	Category      string   `json:"category"`
	Type          string   `json:"type"`
	Difficulty    string   `json:"difficulty"`
	Text          string   `json:"question"`
	CorrectAnswer string   `json:"correct_answer"`
	WrongAnswers  []string `json:"wrong_answers"`
}

func (q Question) String() string {
	return q.Text
}

// BuildQuestions decodes every text field of the raw records and keeps the
// incorrect answers in source order.
func BuildQuestions(raw []opentdb.RawQuestion) []Question {
	questions := make([]Question, 0, len(raw))
	for _, item := range raw {
		questions = append(questions, buildQuestion(item))
	}
	return questions
}

func buildQuestion(raw opentdb.RawQuestion) Question {
	wrong := make([]string, 0, len(raw.IncorrectAnswers))
	for _, incorrect := range raw.IncorrectAnswers {
		wrong = append(wrong, Decode(incorrect))
	}

	return Question{
		Category:      Decode(raw.Category),
		Type:          Decode(raw.Type),
		Difficulty:    Decode(raw.Difficulty),
		Text:          Decode(raw.Question),
		CorrectAnswer: Decode(raw.CorrectAnswer),
		WrongAnswers:  wrong,
	}
}
