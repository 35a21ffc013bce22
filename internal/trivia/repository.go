package trivia

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trivia-app/internal/opentdb"
)

// CategorySource is the part of the OpenTDB client the repository needs.
type CategorySource interface {
	Categories(ctx context.Context) ([]opentdb.RawCategory, error)
	CategoryCount(ctx context.Context, categoryID int) (opentdb.RawCategoryCount, error)
}

type CategoryRepository struct {
	source      CategorySource
	logger      *zap.Logger
	concurrency int
}

// NewCategoryRepository enriches up to concurrency categories at once; values
// below 1 enrich one category at a time.
func NewCategoryRepository(source CategorySource, logger *zap.Logger, concurrency int) *CategoryRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &CategoryRepository{
		source:      source,
		logger:      logger,
		concurrency: concurrency,
	}
}

// FetchCategories loads the category list and fills in question counts for
// every category before returning. On failure the returned set is empty.
func (r *CategoryRepository) FetchCategories(ctx context.Context) (*CategorySet, error) {
	set := NewCategorySet()

	raw, err := r.source.Categories(ctx)
	if err != nil {
		r.logger.Error("failed to fetch categories", zap.Error(err))
		return set, err
	}

	for _, item := range raw {
		set.Add(&Category{ID: item.ID, Name: Decode(item.Name)})
	}

	// Each goroutine owns exactly one category, so the count fields are
	// written once and only read after Wait.
	var group errgroup.Group
	group.SetLimit(r.concurrency)
	for _, category := range set.All() {
		category := category
		group.Go(func() error {
			if err := r.FetchQuestionCount(ctx, category); err != nil {
				r.logger.Warn("question count unavailable, keeping previous counts",
					zap.Int("category_id", category.ID),
					zap.String("category", category.Name),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = group.Wait()

	r.logger.Info("categories loaded", zap.Int("count", set.Len()))
	return set, nil
}

// FetchQuestionCount overwrites the counts of c on success and leaves them
// alone on failure.
func (r *CategoryRepository) FetchQuestionCount(ctx context.Context, c *Category) error {
	count, err := r.source.CategoryCount(ctx, c.ID)
	if err != nil {
		return err
	}
	c.applyCount(count)
	return nil
}
