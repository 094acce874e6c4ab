package contract

import (
	"context"
	"net/http"
)

// ICredentialTransport abstracts how the session credential is obtained
// from and presented to the upstream. Two implementations exist: a bearer
// token header and a Django cookie session with a CSRF handshake.
type ICredentialTransport interface {
	// Login performs the upstream handshake and returns the credential to
	// store on success.
	Login(ctx context.Context, username, password string) (string, error)
	// Logout notifies the upstream that the session ended. Best effort;
	// callers ignore the error for local logout purposes.
	Logout(ctx context.Context, credential string) error
	// Apply attaches the credential to an outgoing request. Called with a
	// non-empty credential only.
	Apply(req *http.Request, credential string) error
	// Username derives the admin identity from the stored credential.
	Username(credential string) string
}
