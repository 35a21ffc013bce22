package trivia

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"trivia-app/internal/opentdb"
)

func sampleCategorySource() *fakeSource {
	return &fakeSource{
		categories: []opentdb.RawCategory{
			{ID: 9, Name: "General Knowledge"},
			{ID: 23, Name: "History"},
			{ID: 26, Name: "Celebrities &amp; Gossip"},
		},
		counts: map[int]opentdb.RawCategoryCount{
			9:  {Total: 300, Easy: 120, Medium: 130, Hard: 50},
			23: {Total: 40, Easy: 4, Medium: 30, Hard: 6},
			26: {Total: 9, Easy: 2, Medium: 3, Hard: 4},
		},
	}
}

func TestFetchCategoriesEnrichesEveryCategory(t *testing.T) {
	for _, concurrency := range []int{1, 4} {
		source := sampleCategorySource()
		repo := NewCategoryRepository(source, nil, concurrency)

		set, err := repo.FetchCategories(context.Background())
		if err != nil {
			t.Fatalf("FetchCategories(concurrency=%d) returned error: %v", concurrency, err)
		}
		if set.Len() != 3 {
			t.Fatalf("len = %d, want 3", set.Len())
		}

		history, ok := set.Get(23)
		if !ok {
			t.Fatalf("category 23 missing")
		}
		if history.TotalCount != 40 || history.EasyCount != 4 || history.MediumCount != 30 || history.HardCount != 6 {
			t.Fatalf("unexpected counts: %+v", history)
		}
		if len(source.countIDs) != 3 {
			t.Fatalf("count fetches = %d, want 3", len(source.countIDs))
		}

		celebrities, _ := set.Get(26)
		if celebrities.Name != "Celebrities & Gossip" {
			t.Fatalf("category name not decoded: %q", celebrities.Name)
		}
	}
}

func TestFetchCategoriesCollapsesDuplicateIDs(t *testing.T) {
	source := sampleCategorySource()
	source.categories = append(source.categories, opentdb.RawCategory{ID: 9, Name: "Duplicate"})

	set, err := NewCategoryRepository(source, nil, 1).FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("FetchCategories returned error: %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("len = %d, want 3", set.Len())
	}
	if c, _ := set.Get(9); c.Name != "General Knowledge" {
		t.Fatalf("expected first category to win, got %q", c.Name)
	}
}

func TestFetchCategoriesFailureReturnsEmptySet(t *testing.T) {
	source := &fakeSource{
		categoriesErr: &opentdb.FetchFailure{Stage: opentdb.StageCategories, StatusCode: http.StatusInternalServerError},
	}

	set, err := NewCategoryRepository(source, nil, 1).FetchCategories(context.Background())
	var failure *opentdb.FetchFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected FetchFailure, got %v", err)
	}
	if failure.Stage != opentdb.StageCategories || failure.StatusCode != http.StatusInternalServerError {
		t.Fatalf("unexpected failure: %+v", failure)
	}
	if set == nil || set.Len() != 0 {
		t.Fatalf("expected empty non-nil set, got %+v", set)
	}
	if len(source.countIDs) != 0 {
		t.Fatalf("expected no count fetches, got %v", source.countIDs)
	}
}

func TestFetchCategoriesCountFailureKeepsZeroCounts(t *testing.T) {
	source := sampleCategorySource()
	source.countErrs = map[int]error{
		23: &opentdb.FetchFailure{Stage: opentdb.StageCount, StatusCode: http.StatusTooManyRequests},
	}

	set, err := NewCategoryRepository(source, nil, 2).FetchCategories(context.Background())
	if err != nil {
		t.Fatalf("count failure must not fail the category fetch: %v", err)
	}

	history, _ := set.Get(23)
	if history.TotalCount != 0 || history.EasyCount != 0 || history.MediumCount != 0 || history.HardCount != 0 {
		t.Fatalf("expected zero counts after failed enrichment, got %+v", history)
	}
	if got := MaxFetchable(history, "medium"); got != 0 {
		t.Fatalf("MaxFetchable on unknown counts = %d, want 0", got)
	}

	general, _ := set.Get(9)
	if general.EasyCount != 120 {
		t.Fatalf("other categories should still be enriched, got %+v", general)
	}
}

func TestFetchQuestionCountKeepsPreviousCountsOnFailure(t *testing.T) {
	source := &fakeSource{
		countErrs: map[int]error{5: &opentdb.DecodeFailure{Stage: opentdb.StageCount, Err: errors.New("bad json")}},
	}
	repo := NewCategoryRepository(source, nil, 1)
	category := &Category{ID: 5, TotalCount: 7, EasyCount: 1, MediumCount: 2, HardCount: 4}

	err := repo.FetchQuestionCount(context.Background(), category)
	var failure *opentdb.DecodeFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected DecodeFailure, got %v", err)
	}
	if category.TotalCount != 7 || category.EasyCount != 1 || category.MediumCount != 2 || category.HardCount != 4 {
		t.Fatalf("counts changed on failure: %+v", category)
	}
}

func TestFetchQuestionCountClampsNegativeCounts(t *testing.T) {
	source := &fakeSource{
		counts: map[int]opentdb.RawCategoryCount{5: {Total: -1, Easy: 3, Medium: -2, Hard: 0}},
	}
	category := &Category{ID: 5}

	if err := NewCategoryRepository(source, nil, 1).FetchQuestionCount(context.Background(), category); err != nil {
		t.Fatalf("FetchQuestionCount returned error: %v", err)
	}
	for name, value := range map[string]int{
		"total":  category.TotalCount,
		"easy":   category.EasyCount,
		"medium": category.MediumCount,
		"hard":   category.HardCount,
	} {
		if value < 0 {
			t.Fatalf("%s count = %d, want >= 0", name, value)
		}
	}
	if category.EasyCount != 3 {
		t.Fatalf("easy = %d, want 3", category.EasyCount)
	}
}
