package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stocai/blog-admin/internal/domain/entity"
	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

// BlogHandler exposes blog administration over HTTP.
type BlogHandler struct {
	blogUC usecasecontract.IBlogUseCase
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(blogUC usecasecontract.IBlogUseCase) *BlogHandler {
	return &BlogHandler{blogUC: blogUC}
}

// ListBlogs returns all blogs.
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.blogUC.ListBlogs(c.Request.Context())
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, blogs)
}

// GetBlog returns one blog by id.
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	blog, err := h.blogUC.GetBlog(c.Request.Context(), id)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, blog)
}

// CreateBlog creates a blog from the submitted draft.
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var draft entity.BlogDraft
	if err := BindAndValidate(c, &draft); err != nil {
		return
	}
	blog, err := h.blogUC.CreateBlog(c.Request.Context(), draft)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, blog)
}

// UpdateBlog rewrites a blog with the submitted draft.
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var draft entity.BlogDraft
	if err := BindAndValidate(c, &draft); err != nil {
		return
	}
	blog, err := h.blogUC.UpdateBlog(c.Request.Context(), id, draft)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, blog)
}

// DeleteBlog removes a blog.
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := h.blogUC.DeleteBlog(c.Request.Context(), id); err != nil {
		RespondAPIError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Blog deleted")
}
