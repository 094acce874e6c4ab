package dto

import (
	"github.com/stocai/blog-admin/internal/domain/entity"
)

// SessionResponse reports the auth gate state to the view layer.
type SessionResponse struct {
	User       *entity.User `json:"user"`
	IsLoggedIn bool         `json:"is_logged_in"`
}

// ToSessionResponse converts an auth state into its response DTO.
func ToSessionResponse(state entity.AuthState) SessionResponse {
	return SessionResponse{User: state.User, IsLoggedIn: state.IsLoggedIn}
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}
