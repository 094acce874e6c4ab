package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stocai/blog-admin/internal/handler/http/dto"
	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

// StoryHandler exposes story moderation over HTTP.
type StoryHandler struct {
	storyUC usecasecontract.IStoryUseCase
}

// NewStoryHandler creates a new story handler.
func NewStoryHandler(storyUC usecasecontract.IStoryUseCase) *StoryHandler {
	return &StoryHandler{storyUC: storyUC}
}

// ListStories returns every submitted story.
func (h *StoryHandler) ListStories(c *gin.Context) {
	stories, err := h.storyUC.ListStories(c.Request.Context())
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, stories)
}

// PublishStory approves or retracts a story for publication.
func (h *StoryHandler) PublishStory(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	var req dto.PublishRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	story, err := h.storyUC.SetStoryPublish(c.Request.Context(), id, *req.AllowPublish)
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, story)
}

// DeleteStory removes a story.
func (h *StoryHandler) DeleteStory(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := h.storyUC.DeleteStory(c.Request.Context(), id); err != nil {
		RespondAPIError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Story deleted")
}
