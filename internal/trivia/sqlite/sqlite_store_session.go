package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"trivia-app/internal/trivia"
)

func (s *SQLiteStore) SaveSession(ctx context.Context, id string, snapshot trivia.SessionSnapshot) error {
	if id == "" {
		return errors.New("session id is required")
	}

	if snapshot.UpdatedAt.IsZero() {
		snapshot.UpdatedAt = time.Now().UTC()
	}

	questionsJSON, err := json.Marshal(snapshot.Questions)
	if err != nil {
		return err
	}
	choicesJSON, err := json.Marshal(snapshot.Choices)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO sessions (session_id, category_id, difficulty, state, question_index, questions_json, choices_json, selected, next_enabled, updated_at_unix)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
			category_id = excluded.category_id,
			difficulty = excluded.difficulty,
			state = excluded.state,
			question_index = excluded.question_index,
			questions_json = excluded.questions_json,
			choices_json = excluded.choices_json,
			selected = excluded.selected,
			next_enabled = excluded.next_enabled,
			updated_at_unix = excluded.updated_at_unix`,
		id,
		snapshot.CategoryID,
		string(snapshot.Difficulty),
		string(snapshot.State),
		snapshot.Index,
		string(questionsJSON),
		string(choicesJSON),
		snapshot.Selected,
		boolToInt(snapshot.NextEnabled),
		snapshot.UpdatedAt.UnixNano(),
	)
	return err
}

func (s *SQLiteStore) LoadSession(ctx context.Context, id string) (trivia.SessionSnapshot, error) {
	var (
		snapshot      trivia.SessionSnapshot
		difficulty    string
		state         string
		questionsJSON string
		choicesJSON   string
		nextEnabled   int
		updatedAtUnix int64
	)

	err := s.db.QueryRowContext(
		ctx,
		`SELECT category_id, difficulty, state, question_index, questions_json, choices_json, selected, next_enabled, updated_at_unix
		 FROM sessions WHERE session_id = ?`,
		id,
	).Scan(
		&snapshot.CategoryID,
		&difficulty,
		&state,
		&snapshot.Index,
		&questionsJSON,
		&choicesJSON,
		&snapshot.Selected,
		&nextEnabled,
		&updatedAtUnix,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return trivia.SessionSnapshot{}, trivia.ErrSessionNotFound
		}
		return trivia.SessionSnapshot{}, err
	}

	if err := json.Unmarshal([]byte(questionsJSON), &snapshot.Questions); err != nil {
		return trivia.SessionSnapshot{}, err
	}
	if err := json.Unmarshal([]byte(choicesJSON), &snapshot.Choices); err != nil {
		return trivia.SessionSnapshot{}, err
	}

	snapshot.Difficulty = trivia.Difficulty(difficulty)
	snapshot.State = trivia.SessionState(state)
	snapshot.NextEnabled = nextEnabled != 0
	snapshot.UpdatedAt = time.Unix(0, updatedAtUnix).UTC()
	return snapshot, nil
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return trivia.ErrSessionNotFound
	}
	return nil
}

// PruneSessions drops sessions not touched since the cutoff and returns how
// many were removed.
func (s *SQLiteStore) PruneSessions(ctx context.Context, olderThan time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE updated_at_unix < ?`, olderThan.UnixNano())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
