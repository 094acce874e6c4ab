package contract

// ISessionStore persists the single opaque session credential under one
// fixed key. Absence of a value means logged out; no expiry is applied
// client-side, the upstream is the authority on validity.
type ISessionStore interface {
	Set(credential string) error
	Get() (string, error)
	Clear() error
}
