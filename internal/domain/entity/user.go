package entity

// User is the admin identity derived from the stored session credential.
// The upstream exposes no richer identity endpoint, so the username is all
// the client ever knows.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
}

// AuthState is the observable state of the auth gate.
type AuthState struct {
	User       *User `json:"user"`
	IsLoading  bool  `json:"is_loading"`
	IsLoggedIn bool  `json:"is_logged_in"`
}
