package httpapi

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"trivia-app/internal/trivia"
)

type QuestionFetcher interface {
	FetchQuestions(ctx context.Context, category *trivia.Category, difficulty string) ([]trivia.Question, error)
}

type API struct {
	categories *trivia.CategorySet
	questions  QuestionFetcher
	store      trivia.SessionStore
	shuffler   *trivia.Shuffler
	logger     *zap.Logger
	newID      func() string

	// mu serialises load-mutate-save of sessions.
	mu sync.Mutex
}

func NewAPI(categories *trivia.CategorySet, questions QuestionFetcher, store trivia.SessionStore, shuffler *trivia.Shuffler, logger *zap.Logger) *API {
	if categories == nil {
		categories = trivia.NewCategorySet()
	}
	if shuffler == nil {
		shuffler = trivia.NewShuffler(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		categories: categories,
		questions:  questions,
		store:      store,
		shuffler:   shuffler,
		logger:     logger,
		newID:      uuid.NewString,
	}
}
