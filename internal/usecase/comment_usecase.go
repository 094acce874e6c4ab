package usecase

import (
	"context"
	"net/url"

	"github.com/stocai/blog-admin/internal/domain/entity"
	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

const (
	commentsResource = "comments"
	commentsPath     = "/comments/"
)

// CommentUseCase implements comment moderation over the data-access layer.
type CommentUseCase struct {
	data *DataService
}

// NewCommentUseCase creates a new comment usecase.
func NewCommentUseCase(data *DataService) *CommentUseCase {
	return &CommentUseCase{data: data}
}

// ListComments returns comments, optionally filtered to one blog. The
// filter folds into the cache key so each filtered view caches on its own.
func (uc *CommentUseCase) ListComments(ctx context.Context, blogID string) ([]entity.Comment, error) {
	params := url.Values{}
	if blogID != "" {
		params.Set("blog", blogID)
	}
	return Fetch[[]entity.Comment](ctx, uc.data, CacheKey(commentsResource, params), commentsPath, params)
}

// DeleteComment removes a comment and invalidates every cached comment
// read, filtered views included.
func (uc *CommentUseCase) DeleteComment(ctx context.Context, id int64) error {
	return uc.data.Delete(ctx, commentsPath, id, commentsResource)
}

var _ usecasecontract.ICommentUseCase = (*CommentUseCase)(nil)
