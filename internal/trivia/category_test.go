package trivia

import "testing"

func TestCategoryEqualUsesIDOnly(t *testing.T) {
	a := &Category{ID: 9, Name: "General Knowledge", EasyCount: 3}
	b := &Category{ID: 9, Name: "Renamed", EasyCount: 99}
	c := &Category{ID: 10, Name: "General Knowledge"}

	if !a.Equal(b) {
		t.Fatalf("expected categories with the same id to be equal")
	}
	if a.Equal(c) {
		t.Fatalf("expected categories with different ids to differ")
	}
}

func TestCategorySetKeepsFirstOfDuplicateIDs(t *testing.T) {
	set := NewCategorySet()
	if !set.Add(&Category{ID: 1, Name: "First"}) {
		t.Fatalf("expected first add to succeed")
	}
	if set.Add(&Category{ID: 1, Name: "Second"}) {
		t.Fatalf("expected duplicate id to be rejected")
	}

	if set.Len() != 1 {
		t.Fatalf("len = %d, want 1", set.Len())
	}
	got, ok := set.Get(1)
	if !ok || got.Name != "First" {
		t.Fatalf("unexpected category for id 1: %+v", got)
	}
}

func TestCategorySetSortedByName(t *testing.T) {
	set := NewCategorySet()
	set.Add(&Category{ID: 3, Name: "history"})
	set.Add(&Category{ID: 1, Name: "Art"})
	set.Add(&Category{ID: 2, Name: "Geography"})

	sorted := set.Sorted()
	want := []int{1, 2, 3}
	for idx, id := range want {
		if sorted[idx].ID != id {
			t.Fatalf("sorted[%d] = %d, want %d", idx, sorted[idx].ID, id)
		}
	}
}

func TestCountForMapsEachDifficulty(t *testing.T) {
	c := &Category{EasyCount: 1, MediumCount: 2, HardCount: 3}

	if got := c.CountFor(Easy); got != 1 {
		t.Fatalf("easy = %d, want 1", got)
	}
	if got := c.CountFor(Medium); got != 2 {
		t.Fatalf("medium = %d, want 2", got)
	}
	if got := c.CountFor(Hard); got != 3 {
		t.Fatalf("hard = %d, want 3", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := map[string]Difficulty{
		"easy":    Easy,
		"EASY":    Easy,
		" Hard ":  Hard,
		"medium":  Medium,
		"Medium":  Medium,
		"":        Medium,
		"extreme": Medium,
	}
	for input, want := range tests {
		if got := ParseDifficulty(input); got != want {
			t.Fatalf("ParseDifficulty(%q) = %q, want %q", input, got, want)
		}
	}
}
