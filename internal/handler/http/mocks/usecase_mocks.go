package mocks

import (
	"context"
	"net/http"

	"github.com/stocai/blog-admin/internal/domain/entity"
)

// MockAuthUsecase is a hand-rolled auth gate for handler tests.
type MockAuthUsecase struct {
	Loading         bool
	LoggedIn        bool
	ShouldFailLogin bool
	LogoutCalls     int
}

func (m *MockAuthUsecase) Init() {}

func (m *MockAuthUsecase) Login(_ context.Context, username, _ string) error {
	if m.ShouldFailLogin {
		return entity.NewAPIError("Invalid credentials", http.StatusBadRequest)
	}
	m.LoggedIn = true
	return nil
}

func (m *MockAuthUsecase) Logout(_ context.Context) error {
	m.LogoutCalls++
	m.LoggedIn = false
	return nil
}

func (m *MockAuthUsecase) State() entity.AuthState {
	state := entity.AuthState{IsLoading: m.Loading, IsLoggedIn: m.LoggedIn}
	if m.LoggedIn {
		state.User = &entity.User{Username: "admin"}
	}
	return state
}

func (m *MockAuthUsecase) Subscribe(func(entity.AuthState)) {}

func (m *MockAuthUsecase) HandleAuthExpired() { m.LoggedIn = false }

// MockBlogUsecase serves canned blogs for handler tests.
type MockBlogUsecase struct {
	ShouldFailList   bool
	ShouldFailCreate bool
	Deleted          []int64
}

func (m *MockBlogUsecase) ListBlogs(context.Context) ([]entity.Blog, error) {
	if m.ShouldFailList {
		return nil, entity.NewAPIError("An error occurred", http.StatusInternalServerError)
	}
	return []entity.Blog{{ID: 1, Title: "First post", Slug: "first-post"}}, nil
}

func (m *MockBlogUsecase) GetBlog(_ context.Context, id int64) (entity.Blog, error) {
	return entity.Blog{ID: id, Title: "First post", Slug: "first-post"}, nil
}

func (m *MockBlogUsecase) CreateBlog(_ context.Context, draft entity.BlogDraft) (entity.Blog, error) {
	if m.ShouldFailCreate {
		return entity.Blog{}, entity.NewAPIError("Invalid slug", http.StatusBadRequest)
	}
	return entity.Blog{ID: 2, Title: draft.Title, Slug: draft.Slug}, nil
}

func (m *MockBlogUsecase) UpdateBlog(_ context.Context, id int64, draft entity.BlogDraft) (entity.Blog, error) {
	return entity.Blog{ID: id, Title: draft.Title, Slug: draft.Slug}, nil
}

func (m *MockBlogUsecase) DeleteBlog(_ context.Context, id int64) error {
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockCommentUsecase records the blog filter it was asked for.
type MockCommentUsecase struct {
	LastBlogFilter string
	Deleted        []int64
}

func (m *MockCommentUsecase) ListComments(_ context.Context, blogID string) ([]entity.Comment, error) {
	m.LastBlogFilter = blogID
	return []entity.Comment{{ID: 1, Blog: 3, Name: "reader", Content: "nice"}}, nil
}

func (m *MockCommentUsecase) DeleteComment(_ context.Context, id int64) error {
	m.Deleted = append(m.Deleted, id)
	return nil
}

// MockStoryUsecase serves canned stories for handler tests.
type MockStoryUsecase struct {
	ShouldFailPublish bool
	LastPublish       *bool
}

func (m *MockStoryUsecase) ListStories(context.Context) ([]entity.Story, error) {
	return []entity.Story{{ID: 1, StoryText: "a story"}}, nil
}

func (m *MockStoryUsecase) SetStoryPublish(_ context.Context, id int64, allowPublish bool) (entity.Story, error) {
	if m.ShouldFailPublish {
		return entity.Story{}, entity.NewAPIError("Not found", http.StatusNotFound)
	}
	m.LastPublish = &allowPublish
	return entity.Story{ID: id, StoryText: "a story", AllowPublish: allowPublish}, nil
}

func (m *MockStoryUsecase) DeleteStory(context.Context, int64) error { return nil }
