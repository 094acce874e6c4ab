package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocai/blog-admin/internal/domain/entity"
	"github.com/stocai/blog-admin/internal/infrastructure/upstream"
)

func TestBearerLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/token/", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["username"] != "admin" || creds["password"] != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"Invalid credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access": "access-token", "refresh": "refresh-token"})
	}))
	defer srv.Close()

	transport := upstream.NewBearerTransport(srv.URL, srv.Client())

	credential, err := transport.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "access-token", credential)

	_, err = transport.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	apiErr := entity.AsAPIError(err)
	assert.Equal(t, "Invalid credentials", apiErr.Message)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestBearerApply(t *testing.T) {
	transport := upstream.NewBearerTransport("http://upstream", &http.Client{})
	req, err := http.NewRequest(http.MethodGet, "http://upstream/blogs/", nil)
	require.NoError(t, err)

	require.NoError(t, transport.Apply(req, "tok"))
	assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
}

func TestBearerUsername(t *testing.T) {
	transport := upstream.NewBearerTransport("http://upstream", &http.Client{})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "admin",
		"sub":      "17",
	}).SignedString([]byte("upstream-only-secret"))
	require.NoError(t, err)

	assert.Equal(t, "admin", transport.Username(token))
	assert.Equal(t, "", transport.Username("not-a-jwt"), "opaque tokens carry no identity")
}
