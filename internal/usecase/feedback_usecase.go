package usecase

import (
	"context"
	"net/url"

	"github.com/stocai/blog-admin/internal/domain/entity"
	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

const (
	feedbackResource = "feedback"
	feedbackPath     = "/feedback/"
)

// FeedbackUseCase implements feedback review over the data-access layer.
type FeedbackUseCase struct {
	data *DataService
}

// NewFeedbackUseCase creates a new feedback usecase.
func NewFeedbackUseCase(data *DataService) *FeedbackUseCase {
	return &FeedbackUseCase{data: data}
}

// ListFeedback returns reader feedback, optionally filtered to one blog.
func (uc *FeedbackUseCase) ListFeedback(ctx context.Context, blogID string) ([]entity.Feedback, error) {
	params := url.Values{}
	if blogID != "" {
		params.Set("blog", blogID)
	}
	return Fetch[[]entity.Feedback](ctx, uc.data, CacheKey(feedbackResource, params), feedbackPath, params)
}

// DeleteFeedback removes one feedback entry and invalidates cached reads.
func (uc *FeedbackUseCase) DeleteFeedback(ctx context.Context, id int64) error {
	return uc.data.Delete(ctx, feedbackPath, id, feedbackResource)
}

var _ usecasecontract.IFeedbackUseCase = (*FeedbackUseCase)(nil)
