package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stocai/blog-admin/internal/handler/http/dto"
	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

// AuthHandler exposes the auth gate over HTTP.
type AuthHandler struct {
	gate usecasecontract.IAuthUseCase
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(gate usecasecontract.IAuthUseCase) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// Login forwards the credentials to the upstream and reports the
// resulting session state. The upstream's rejection message is passed
// through verbatim.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if err := h.gate.Login(c.Request.Context(), req.Username, req.Password); err != nil {
		RespondAPIError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToSessionResponse(h.gate.State()))
}

// Logout ends the session. The upstream notification is best effort, so
// this only fails when the local store cannot be cleared.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.gate.Logout(c.Request.Context()); err != nil {
		RespondAPIError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Logged out")
}

// Me reports the current auth gate state.
func (h *AuthHandler) Me(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, dto.ToSessionResponse(h.gate.State()))
}
