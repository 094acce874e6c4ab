package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

// FeedbackHandler exposes feedback review over HTTP.
type FeedbackHandler struct {
	feedbackUC usecasecontract.IFeedbackUseCase
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedbackUC usecasecontract.IFeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{feedbackUC: feedbackUC}
}

// ListFeedback returns reader feedback, filtered to one blog when the
// blog query parameter is set.
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	feedback, err := h.feedbackUC.ListFeedback(c.Request.Context(), c.Query("blog"))
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, feedback)
}

// DeleteFeedback removes one feedback entry.
func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := h.feedbackUC.DeleteFeedback(c.Request.Context(), id); err != nil {
		RespondAPIError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Feedback deleted")
}
