package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

// CommentHandler exposes comment moderation over HTTP.
type CommentHandler struct {
	commentUC usecasecontract.ICommentUseCase
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentUC usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{commentUC: commentUC}
}

// ListComments returns comments, filtered to one blog when the blog
// query parameter is set.
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentUC.ListComments(c.Request.Context(), c.Query("blog"))
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, comments)
}

// DeleteComment removes a comment.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		return
	}
	if err := h.commentUC.DeleteComment(c.Request.Context(), id); err != nil {
		RespondAPIError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Comment deleted")
}
