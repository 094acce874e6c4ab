package upstream_test

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocai/blog-admin/internal/infrastructure/upstream"
)

const loginFormHTML = `<html><body>
<form method="post" action="/admin/login/">
<input type="hidden" name="csrfmiddlewaretoken" value="csrf-token-42">
<input type="text" name="username">
<input type="password" name="password">
</form>
</body></html>`

func newCookieServer(t *testing.T) (*httptest.Server, *map[string]string) {
	t.Helper()
	seen := map[string]string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/admin/login/":
			w.Write([]byte(loginFormHTML))
		case r.Method == http.MethodPost && r.URL.Path == "/admin/login/":
			require.NoError(t, r.ParseForm())
			seen["csrfmiddlewaretoken"] = r.PostFormValue("csrfmiddlewaretoken")
			seen["username"] = r.PostFormValue("username")
			seen["next"] = r.PostFormValue("next")
			seen["X-CSRFToken"] = r.Header.Get("X-CSRFToken")
			if r.PostFormValue("password") != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "s-1", Path: "/"})
		case r.Method == http.MethodGet && r.URL.Path == "/admin/logout/":
			seen["logout"] = "yes"
		default:
			http.NotFound(w, r)
		}
	}))
	return srv, &seen
}

func newJarClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func TestCookieLoginHandshake(t *testing.T) {
	srv, seen := newCookieServer(t)
	defer srv.Close()

	transport := upstream.NewCookieTransport(srv.URL, newJarClient(t))

	credential, err := transport.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", credential, "the username stands in as the credential")
	assert.Equal(t, "csrf-token-42", (*seen)["csrfmiddlewaretoken"])
	assert.Equal(t, "csrf-token-42", (*seen)["X-CSRFToken"])
	assert.Equal(t, "admin", (*seen)["username"])
	assert.Equal(t, "/admin/", (*seen)["next"])
}

func TestCookieLoginRejected(t *testing.T) {
	srv, _ := newCookieServer(t)
	defer srv.Close()

	transport := upstream.NewCookieTransport(srv.URL, newJarClient(t))

	_, err := transport.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Login failed. Please check your credentials.", err.Error())
}

func TestCookieApplyScrapesTokenForMutations(t *testing.T) {
	srv, _ := newCookieServer(t)
	defer srv.Close()

	transport := upstream.NewCookieTransport(srv.URL, newJarClient(t))

	del, err := http.NewRequest(http.MethodDelete, srv.URL+"/comments/5/", nil)
	require.NoError(t, err)
	require.NoError(t, transport.Apply(del, "admin"))
	assert.Equal(t, "csrf-token-42", del.Header.Get("X-CSRFToken"))

	get, err := http.NewRequest(http.MethodGet, srv.URL+"/comments/", nil)
	require.NoError(t, err)
	require.NoError(t, transport.Apply(get, "admin"))
	assert.Empty(t, get.Header.Get("X-CSRFToken"), "safe methods skip the handshake")
}

func TestCookieLogout(t *testing.T) {
	srv, seen := newCookieServer(t)
	defer srv.Close()

	transport := upstream.NewCookieTransport(srv.URL, newJarClient(t))
	require.NoError(t, transport.Logout(context.Background(), "admin"))
	assert.Equal(t, "yes", (*seen)["logout"])
}
