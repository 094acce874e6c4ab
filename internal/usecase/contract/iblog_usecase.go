package usecasecontract

import (
	"context"

	"github.com/stocai/blog-admin/internal/domain/entity"
)

// IBlogUseCase defines the admin operations on blogs.
type IBlogUseCase interface {
	ListBlogs(ctx context.Context) ([]entity.Blog, error)
	GetBlog(ctx context.Context, id int64) (entity.Blog, error)
	CreateBlog(ctx context.Context, draft entity.BlogDraft) (entity.Blog, error)
	UpdateBlog(ctx context.Context, id int64, draft entity.BlogDraft) (entity.Blog, error)
	DeleteBlog(ctx context.Context, id int64) error
}
