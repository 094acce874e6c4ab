package usecase

import (
	"context"
	"fmt"

	"github.com/stocai/blog-admin/internal/domain/entity"
	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

const (
	blogsResource = "blogs"
	blogsPath     = "/blogs/"
)

// BlogUseCase implements the admin blog operations over the generic
// data-access layer.
type BlogUseCase struct {
	data *DataService
}

// NewBlogUseCase creates a new blog usecase.
func NewBlogUseCase(data *DataService) *BlogUseCase {
	return &BlogUseCase{data: data}
}

// ListBlogs returns every blog, served from cache inside the freshness
// window.
func (uc *BlogUseCase) ListBlogs(ctx context.Context) ([]entity.Blog, error) {
	return Fetch[[]entity.Blog](ctx, uc.data, CacheKey(blogsResource, nil), blogsPath, nil)
}

// GetBlog returns one blog by id.
func (uc *BlogUseCase) GetBlog(ctx context.Context, id int64) (entity.Blog, error) {
	return Fetch[entity.Blog](ctx, uc.data, DetailKey(blogsResource, id), fmt.Sprintf("%s%d/", blogsPath, id), nil)
}

// CreateBlog creates a blog and invalidates every cached blog read.
func (uc *BlogUseCase) CreateBlog(ctx context.Context, draft entity.BlogDraft) (entity.Blog, error) {
	return Create[entity.Blog](ctx, uc.data, blogsPath, blogsResource, draft)
}

// UpdateBlog rewrites a blog and invalidates every cached blog read.
func (uc *BlogUseCase) UpdateBlog(ctx context.Context, id int64, draft entity.BlogDraft) (entity.Blog, error) {
	return Update[entity.Blog](ctx, uc.data, blogsPath, id, blogsResource, draft)
}

// DeleteBlog removes a blog and invalidates every cached blog read.
func (uc *BlogUseCase) DeleteBlog(ctx context.Context, id int64) error {
	return uc.data.Delete(ctx, blogsPath, id, blogsResource)
}

var _ usecasecontract.IBlogUseCase = (*BlogUseCase)(nil)
