package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"trivia-app/internal/trivia"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sessions.db")
	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func sampleSnapshot() trivia.SessionSnapshot {
	session := trivia.NewSession(trivia.NewShuffler(func(int) int { return 1 }))
	session.Start([]trivia.Question{
		{Category: "History", Type: "multiple", Difficulty: "hard", Text: "Q1", CorrectAnswer: "A", WrongAnswers: []string{"B", "C"}},
		{Category: "History", Type: "boolean", Difficulty: "hard", Text: "Q2", CorrectAnswer: "True", WrongAnswers: []string{"False"}},
	})
	if _, err := session.SelectAnswer(0); err != nil {
		panic(err)
	}

	snapshot := session.Snapshot()
	snapshot.CategoryID = 23
	snapshot.Difficulty = trivia.Hard
	snapshot.UpdatedAt = time.Unix(1700000000, 42).UTC()
	return snapshot
}

func TestSQLiteStoreSaveAndLoadSession(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	want := sampleSnapshot()
	if err := store.SaveSession(ctx, "s-1", want); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	got, err := store.LoadSession(ctx, "s-1")
	if err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}

	if got.CategoryID != 23 || got.Difficulty != trivia.Hard || got.State != trivia.StateInProgress {
		t.Fatalf("unexpected metadata: %+v", got)
	}
	if got.Index != 0 || got.Selected != 0 || !got.NextEnabled {
		t.Fatalf("unexpected progress: index=%d selected=%d next=%v", got.Index, got.Selected, got.NextEnabled)
	}
	if !got.UpdatedAt.Equal(want.UpdatedAt) {
		t.Fatalf("updated_at = %v, want %v", got.UpdatedAt, want.UpdatedAt)
	}
	if len(got.Questions) != 2 || got.Questions[1].WrongAnswers[0] != "False" {
		t.Fatalf("unexpected questions: %+v", got.Questions)
	}
	if len(got.Choices) != 3 || trivia.CorrectIndex(got.Choices) != 1 {
		t.Fatalf("unexpected choices: %+v", got.Choices)
	}
}

func TestSQLiteStoreSaveOverwrites(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	snapshot := sampleSnapshot()
	if err := store.SaveSession(ctx, "s-1", snapshot); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	restored := trivia.RestoreSession(snapshot, nil)
	if err := restored.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	next := restored.Snapshot()
	next.CategoryID = snapshot.CategoryID
	next.Difficulty = snapshot.Difficulty
	if err := store.SaveSession(ctx, "s-1", next); err != nil {
		t.Fatalf("second SaveSession failed: %v", err)
	}

	got, err := store.LoadSession(ctx, "s-1")
	if err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}
	if got.Index != 1 || got.NextEnabled || got.Selected != -1 {
		t.Fatalf("overwrite not applied: %+v", got)
	}
}

func TestSQLiteStoreMissingSession(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	if _, err := store.LoadSession(ctx, "missing"); !errors.Is(err, trivia.ErrSessionNotFound) {
		t.Fatalf("LoadSession error = %v, want ErrSessionNotFound", err)
	}
	if err := store.DeleteSession(ctx, "missing"); !errors.Is(err, trivia.ErrSessionNotFound) {
		t.Fatalf("DeleteSession error = %v, want ErrSessionNotFound", err)
	}
}

func TestSQLiteStoreDeleteAndPrune(t *testing.T) {
	store := newTestSQLiteStore(t)
	ctx := context.Background()

	old := sampleSnapshot()
	fresh := sampleSnapshot()
	fresh.UpdatedAt = time.Unix(1800000000, 0).UTC()

	for id, snapshot := range map[string]trivia.SessionSnapshot{"old": old, "fresh": fresh, "gone": fresh} {
		if err := store.SaveSession(ctx, id, snapshot); err != nil {
			t.Fatalf("SaveSession(%s) failed: %v", id, err)
		}
	}

	if err := store.DeleteSession(ctx, "gone"); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}

	removed, err := store.PruneSessions(ctx, time.Unix(1750000000, 0))
	if err != nil {
		t.Fatalf("PruneSessions failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, err := store.LoadSession(ctx, "fresh"); err != nil {
		t.Fatalf("fresh session should survive pruning: %v", err)
	}
}

func TestNewSQLiteStoreDefaultsToMemory(t *testing.T) {
	store, err := NewSQLiteStore("")
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.SaveSession(ctx, "mem", sampleSnapshot()); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}
	if _, err := store.LoadSession(ctx, "mem"); err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}
}
