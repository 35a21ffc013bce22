package trivia

import (
	"context"
	"sync"

	"trivia-app/internal/opentdb"
)

type fakeSource struct {
	mu sync.Mutex

	categories    []opentdb.RawCategory
	categoriesErr error

	counts    map[int]opentdb.RawCategoryCount
	countErrs map[int]error
	countIDs  []int

	questions    []opentdb.RawQuestion
	questionsErr error
	queries      []opentdb.QuestionQuery
}

func (f *fakeSource) Categories(_ context.Context) ([]opentdb.RawCategory, error) {
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func (f *fakeSource) CategoryCount(_ context.Context, categoryID int) (opentdb.RawCategoryCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.countIDs = append(f.countIDs, categoryID)
	if err, ok := f.countErrs[categoryID]; ok {
		return opentdb.RawCategoryCount{}, err
	}
	return f.counts[categoryID], nil
}

func (f *fakeSource) Questions(_ context.Context, query opentdb.QuestionQuery) ([]opentdb.RawQuestion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries = append(f.queries, query)
	if f.questionsErr != nil {
		return nil, f.questionsErr
	}
	return f.questions, nil
}
