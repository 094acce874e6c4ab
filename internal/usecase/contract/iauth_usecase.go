package usecasecontract

import (
	"context"

	"github.com/stocai/blog-admin/internal/domain/entity"
)

// IAuthUseCase is the auth gate: the single owner of session state.
type IAuthUseCase interface {
	// Init performs the one-time startup check of the session store and
	// resolves the gate out of its initializing state.
	Init()
	Login(ctx context.Context, username, password string) error
	// Logout clears the local session and notifies the upstream best
	// effort. A non-nil error means the local store could not be cleared.
	Logout(ctx context.Context) error
	State() entity.AuthState
	// Subscribe registers a callback invoked after every state change.
	Subscribe(fn func(entity.AuthState))
	// HandleAuthExpired is the forced logout path taken when the upstream
	// rejects a credential mid-session.
	HandleAuthExpired()
}
