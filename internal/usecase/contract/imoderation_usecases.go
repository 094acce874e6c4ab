package usecasecontract

import (
	"context"

	"github.com/stocai/blog-admin/internal/domain/entity"
)

// ICommentUseCase defines comment moderation operations. blogID filters
// the listing to one blog when non-empty.
type ICommentUseCase interface {
	ListComments(ctx context.Context, blogID string) ([]entity.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

// IFeedbackUseCase defines feedback review operations.
type IFeedbackUseCase interface {
	ListFeedback(ctx context.Context, blogID string) ([]entity.Feedback, error)
	DeleteFeedback(ctx context.Context, id int64) error
}

// IStoryUseCase defines story moderation operations.
type IStoryUseCase interface {
	ListStories(ctx context.Context) ([]entity.Story, error)
	SetStoryPublish(ctx context.Context, id int64, allowPublish bool) (entity.Story, error)
	DeleteStory(ctx context.Context, id int64) error
}

// IDashboardUseCase aggregates the stats for the admin landing page.
type IDashboardUseCase interface {
	GetStats(ctx context.Context) (entity.DashboardStats, error)
}
