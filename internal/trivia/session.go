package trivia

import "fmt"

type SessionState string

const (
	StateNotStarted SessionState = "not_started"
	StateInProgress SessionState = "in_progress"
	StateFinished   SessionState = "finished"
)

// Session walks one question batch from first to last. It keeps no score;
// selecting any answer only unlocks the next question.
type Session struct {
	shuffler    *Shuffler
	questions   []Question
	index       int
	state       SessionState
	choices     []AnswerChoice
	selected    int
	nextEnabled bool
}

func NewSession(shuffler *Shuffler) *Session {
	if shuffler == nil {
		shuffler = NewShuffler(nil)
	}
	return &Session{
		shuffler: shuffler,
		state:    StateNotStarted,
		selected: -1,
	}
}

// Start begins the batch. An empty batch finishes the session at once.
func (s *Session) Start(questions []Question) {
	s.questions = append([]Question(nil), questions...)
	s.index = 0
	if len(s.questions) == 0 {
		s.finish()
		return
	}
	s.state = StateInProgress
	s.enterQuestion()
}

func (s *Session) State() SessionState {
	return s.state
}

func (s *Session) Index() int {
	return s.index
}

func (s *Session) Len() int {
	return len(s.questions)
}

func (s *Session) CurrentQuestion() (Question, error) {
	if s.state != StateInProgress {
		return Question{}, ErrSessionNotInProgress
	}
	return s.questions[s.index], nil
}

// Choices returns the layout of the current question.
func (s *Session) Choices() ([]AnswerChoice, error) {
	if s.state != StateInProgress {
		return nil, ErrSessionNotInProgress
	}
	return append([]AnswerChoice(nil), s.choices...), nil
}

// SelectAnswer records a choice for the current question, unlocks Advance
// in the UI and reports whether the choice was correct.
func (s *Session) SelectAnswer(choice int) (bool, error) {
	if s.state != StateInProgress {
		return false, ErrSessionNotInProgress
	}
	if choice < 0 || choice >= len(s.choices) {
		return false, fmt.Errorf("%w: %d of %d", ErrInvalidChoice, choice, len(s.choices))
	}
	s.selected = choice
	s.nextEnabled = true
	return s.choices[choice].IsCorrect, nil
}

// Selected returns the selected choice index, or -1.
func (s *Session) Selected() int {
	return s.selected
}

func (s *Session) NextEnabled() bool {
	return s.state == StateInProgress && s.nextEnabled
}

// Advance moves to the next question, or finishes after the last one.
func (s *Session) Advance() error {
	if s.state != StateInProgress {
		return ErrSessionNotInProgress
	}
	if s.index < len(s.questions)-1 {
		s.index++
		s.enterQuestion()
		return nil
	}
	s.finish()
	return nil
}

// Quit abandons the session.
func (s *Session) Quit() {
	s.finish()
}

func (s *Session) enterQuestion() {
	s.choices = s.shuffler.Layout(s.questions[s.index])
	s.selected = -1
	s.nextEnabled = false
}

func (s *Session) finish() {
	s.state = StateFinished
	s.choices = nil
	s.selected = -1
	s.nextEnabled = false
}
