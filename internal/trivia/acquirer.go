package trivia

import (
	"context"

	"go.uber.org/zap"

	"trivia-app/internal/opentdb"
)

// MaxBatchSize caps how many questions a single session asks for.
const MaxBatchSize = 10

// QuestionSource is the part of the OpenTDB client the acquirer needs.
type QuestionSource interface {
	Questions(ctx context.Context, query opentdb.QuestionQuery) ([]opentdb.RawQuestion, error)
}

type QuestionAcquirer struct {
	source QuestionSource
	logger *zap.Logger
}

func NewQuestionAcquirer(source QuestionSource, logger *zap.Logger) *QuestionAcquirer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionAcquirer{source: source, logger: logger}
}

// MaxFetchable is the batch size to request for a category and difficulty:
// never more than MaxBatchSize and never more than the known count.
func MaxFetchable(c *Category, difficulty string) int {
	return min(MaxBatchSize, c.CountFor(ParseDifficulty(difficulty)))
}

// FetchQuestions requests a batch for the category and difficulty. It always
// returns a non-nil slice; on failure the slice is empty and the error is one
// of the opentdb failure types. A category with no known questions at the
// difficulty yields an empty batch without a request.
func (a *QuestionAcquirer) FetchQuestions(ctx context.Context, c *Category, difficulty string) ([]Question, error) {
	d := ParseDifficulty(difficulty)
	amount := MaxFetchable(c, difficulty)
	if amount == 0 {
		a.logger.Info("no questions available, skipping fetch",
			zap.Int("category_id", c.ID),
			zap.String("difficulty", d.String()),
		)
		return []Question{}, nil
	}

	raw, err := a.source.Questions(ctx, opentdb.QuestionQuery{
		Amount:     amount,
		CategoryID: c.ID,
		Difficulty: d.String(),
	})
	if err != nil {
		a.logger.Error("failed to fetch questions",
			zap.Int("category_id", c.ID),
			zap.String("difficulty", d.String()),
			zap.Int("amount", amount),
			zap.Error(err),
		)
		return []Question{}, err
	}

	questions := BuildQuestions(raw)
	a.logger.Debug("questions fetched",
		zap.Int("category_id", c.ID),
		zap.String("difficulty", d.String()),
		zap.Int("count", len(questions)),
	)
	return questions, nil
}
