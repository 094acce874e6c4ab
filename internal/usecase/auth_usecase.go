package usecase

import (
	"context"
	"sync"

	"github.com/stocai/blog-admin/internal/domain/contract"
	"github.com/stocai/blog-admin/internal/domain/entity"
	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

// AuthUsecase is the auth gate: a three-state machine (initializing,
// logged out, logged in) and the single owner of session state. It starts
// in the loading state; Init resolves it once from the session store.
// Subscribers are told after every transition.
type AuthUsecase struct {
	mu          sync.Mutex
	state       entity.AuthState
	subscribers []func(entity.AuthState)

	sessions  contract.ISessionStore
	transport contract.ICredentialTransport
	logger    usecasecontract.IAppLogger
}

// NewAuthUsecase creates the gate in its initializing state.
func NewAuthUsecase(sessions contract.ISessionStore, transport contract.ICredentialTransport, logger usecasecontract.IAppLogger) *AuthUsecase {
	return &AuthUsecase{
		state:     entity.AuthState{IsLoading: true},
		sessions:  sessions,
		transport: transport,
		logger:    logger,
	}
}

// Init performs the one-time startup check: a stored credential means the
// session is assumed live until the upstream says otherwise.
func (a *AuthUsecase) Init() {
	credential, err := a.sessions.Get()
	if err != nil {
		a.logger.Errorf("session store read failed on init: %v", err)
		credential = ""
	}
	if credential != "" {
		a.setState(entity.AuthState{
			User:       &entity.User{Username: a.transport.Username(credential)},
			IsLoggedIn: true,
		})
		return
	}
	a.setState(entity.AuthState{})
}

// Login runs the upstream handshake and stores the credential on success.
// On failure the gate stays logged out and the normalized error goes back
// to the caller; the loading flag is dropped on every path.
func (a *AuthUsecase) Login(ctx context.Context, username, password string) error {
	a.updateState(func(s *entity.AuthState) { s.IsLoading = true })
	defer a.updateState(func(s *entity.AuthState) { s.IsLoading = false })

	credential, err := a.transport.Login(ctx, username, password)
	if err != nil {
		a.logger.Warnf("login rejected for %q: %v", username, err)
		return entity.AsAPIError(err)
	}
	if err := a.sessions.Set(credential); err != nil {
		a.logger.Errorf("persisting session failed: %v", err)
		return entity.AsAPIError(err)
	}

	a.updateState(func(s *entity.AuthState) {
		s.User = &entity.User{Username: a.transport.Username(credential)}
		s.IsLoggedIn = true
	})
	a.logger.Infof("login succeeded for %q", username)
	return nil
}

// Logout ends the session locally and tells the upstream best effort. A
// failed upstream call never blocks the local logout.
func (a *AuthUsecase) Logout(ctx context.Context) error {
	credential, _ := a.sessions.Get()
	if credential != "" {
		if err := a.transport.Logout(ctx, credential); err != nil {
			a.logger.Warnf("upstream logout failed, continuing locally: %v", err)
		}
	}

	clearErr := a.sessions.Clear()
	a.setState(entity.AuthState{})
	if clearErr != nil {
		a.logger.Errorf("clearing session store failed: %v", clearErr)
		return entity.AsAPIError(clearErr)
	}
	return nil
}

// HandleAuthExpired is the forced logout path, taken when the upstream
// answers 401/403 mid-session. No upstream call is made; the credential
// is already dead.
func (a *AuthUsecase) HandleAuthExpired() {
	a.mu.Lock()
	loggedIn := a.state.IsLoggedIn
	a.mu.Unlock()
	if !loggedIn {
		return
	}
	a.logger.Warnf("upstream rejected the session, forcing logout")
	if err := a.sessions.Clear(); err != nil {
		a.logger.Errorf("clearing session store failed: %v", err)
	}
	a.setState(entity.AuthState{})
}

// State returns a snapshot of the gate.
func (a *AuthUsecase) State() entity.AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Subscribe registers a callback run after every state change.
func (a *AuthUsecase) Subscribe(fn func(entity.AuthState)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.subscribers = append(a.subscribers, fn)
}

func (a *AuthUsecase) setState(next entity.AuthState) {
	a.mu.Lock()
	a.state = next
	subs := make([]func(entity.AuthState), len(a.subscribers))
	copy(subs, a.subscribers)
	a.mu.Unlock()
	for _, fn := range subs {
		fn(next)
	}
}

func (a *AuthUsecase) updateState(mutate func(*entity.AuthState)) {
	a.mu.Lock()
	mutate(&a.state)
	next := a.state
	subs := make([]func(entity.AuthState), len(a.subscribers))
	copy(subs, a.subscribers)
	a.mu.Unlock()
	for _, fn := range subs {
		fn(next)
	}
}

var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)
