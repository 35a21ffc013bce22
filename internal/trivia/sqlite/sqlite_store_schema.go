package sqlite

import (
	"context"
)

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			category_id INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			state TEXT NOT NULL,
			question_index INTEGER NOT NULL,
			questions_json TEXT NOT NULL,
			choices_json TEXT NOT NULL,
			selected INTEGER NOT NULL DEFAULT -1,
			next_enabled INTEGER NOT NULL DEFAULT 0,
			updated_at_unix INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions(updated_at_unix DESC);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
