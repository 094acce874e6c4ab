package usecase

import (
	"context"

	"github.com/stocai/blog-admin/internal/domain/entity"
	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

const (
	storiesResource = "stories"
	storiesPath     = "/stories/"
)

// StoryUseCase implements story moderation over the data-access layer.
type StoryUseCase struct {
	data *DataService
}

// NewStoryUseCase creates a new story usecase.
func NewStoryUseCase(data *DataService) *StoryUseCase {
	return &StoryUseCase{data: data}
}

// ListStories returns every submitted story.
func (uc *StoryUseCase) ListStories(ctx context.Context) ([]entity.Story, error) {
	return Fetch[[]entity.Story](ctx, uc.data, CacheKey(storiesResource, nil), storiesPath, nil)
}

// SetStoryPublish approves or retracts a story for publication.
func (uc *StoryUseCase) SetStoryPublish(ctx context.Context, id int64, allowPublish bool) (entity.Story, error) {
	payload := map[string]bool{"allow_publish": allowPublish}
	return Update[entity.Story](ctx, uc.data, storiesPath, id, storiesResource, payload)
}

// DeleteStory removes a story and invalidates cached story reads.
func (uc *StoryUseCase) DeleteStory(ctx context.Context, id int64) error {
	return uc.data.Delete(ctx, storiesPath, id, storiesResource)
}

var _ usecasecontract.IStoryUseCase = (*StoryUseCase)(nil)
