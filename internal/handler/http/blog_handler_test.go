package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocai/blog-admin/internal/domain/entity"
	handler "github.com/stocai/blog-admin/internal/handler/http"
	"github.com/stocai/blog-admin/internal/handler/http/mocks"
	"github.com/stocai/blog-admin/internal/infrastructure/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

func setupBlogRouter(h *handler.BlogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/blogs", h.ListBlogs)
	r.POST("/blogs", h.CreateBlog)
	r.GET("/blogs/:id", h.GetBlog)
	r.PUT("/blogs/:id", h.UpdateBlog)
	r.DELETE("/blogs/:id", h.DeleteBlog)
	return r
}

func TestListBlogs(t *testing.T) {
	h := handler.NewBlogHandler(&mocks.MockBlogUsecase{})
	r := setupBlogRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/blogs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "First post")
}

func TestListBlogs_Fail(t *testing.T) {
	h := handler.NewBlogHandler(&mocks.MockBlogUsecase{ShouldFailList: true})
	r := setupBlogRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/blogs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "An error occurred")
}

func TestCreateBlog(t *testing.T) {
	h := handler.NewBlogHandler(&mocks.MockBlogUsecase{})
	r := setupBlogRouter(h)

	payload := entity.BlogDraft{Title: "New post", Slug: "new-post", Content: "body"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/blogs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "new-post")
}

func TestCreateBlog_InvalidSlug(t *testing.T) {
	h := handler.NewBlogHandler(&mocks.MockBlogUsecase{})
	r := setupBlogRouter(h)

	payload := entity.BlogDraft{Title: "New post", Slug: "New Post!", Content: "body"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/blogs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Slug")
}

func TestCreateBlog_UpstreamRejects(t *testing.T) {
	h := handler.NewBlogHandler(&mocks.MockBlogUsecase{ShouldFailCreate: true})
	r := setupBlogRouter(h)

	payload := entity.BlogDraft{Title: "New post", Slug: "new-post", Content: "body"}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/blogs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid slug")
}

func TestDeleteBlog(t *testing.T) {
	mockUC := &mocks.MockBlogUsecase{}
	h := handler.NewBlogHandler(mockUC)
	r := setupBlogRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/blogs/4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []int64{4}, mockUC.Deleted)
}

func TestDeleteBlog_BadID(t *testing.T) {
	h := handler.NewBlogHandler(&mocks.MockBlogUsecase{})
	r := setupBlogRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/blogs/not-a-number", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid ID format")
}
