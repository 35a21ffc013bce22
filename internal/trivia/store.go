package trivia

import (
	"context"
	"time"
)

// SessionSnapshot is the stored form of a Session.
type SessionSnapshot struct {
	Questions   []Question     `json:"questions"`
	Index       int            `json:"index"`
	State       SessionState   `json:"state"`
	Choices     []AnswerChoice `json:"choices"`
	Selected    int            `json:"selected"`
	NextEnabled bool           `json:"next_enabled"`
	CategoryID  int            `json:"category_id"`
	Difficulty  Difficulty     `json:"difficulty"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// SessionStore keeps sessions between requests of the HTTP API.
type SessionStore interface {
	SaveSession(ctx context.Context, id string, snapshot SessionSnapshot) error
	LoadSession(ctx context.Context, id string) (SessionSnapshot, error)
	DeleteSession(ctx context.Context, id string) error
}

func (s *Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		Questions:   append([]Question(nil), s.questions...),
		Index:       s.index,
		State:       s.state,
		Choices:     append([]AnswerChoice(nil), s.choices...),
		Selected:    s.selected,
		NextEnabled: s.nextEnabled,
	}
}

// RestoreSession rebuilds a session, keeping the stored layout so the
// answer positions a client has already seen do not move.
func RestoreSession(snapshot SessionSnapshot, shuffler *Shuffler) *Session {
	s := NewSession(shuffler)
	s.questions = append([]Question(nil), snapshot.Questions...)
	s.index = snapshot.Index
	s.state = snapshot.State
	s.choices = append([]AnswerChoice(nil), snapshot.Choices...)
	s.selected = snapshot.Selected
	s.nextEnabled = snapshot.NextEnabled

	if s.state == "" {
		s.state = StateNotStarted
	}
	if s.state == StateInProgress && (s.index < 0 || s.index >= len(s.questions)) {
		s.finish()
	}
	if s.state == StateInProgress && len(s.choices) == 0 {
		s.enterQuestion()
	}
	return s
}
