package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stocai/blog-admin/internal/domain/contract"
	"github.com/stocai/blog-admin/internal/domain/entity"
)

// BearerTransport implements the token credential variant: login against
// the upstream token endpoint, then an Authorization header on every
// request. The upstream stays the authority on token validity; no expiry
// is checked client-side.
type BearerTransport struct {
	baseURL string
	httpc   *http.Client
}

// NewBearerTransport creates the bearer-token credential transport.
func NewBearerTransport(baseURL string, httpc *http.Client) *BearerTransport {
	return &BearerTransport{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

func (t *BearerTransport) Login(ctx context.Context, username, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return "", entity.AsAPIError(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/api/token/", bytes.NewReader(payload))
	if err != nil {
		return "", entity.AsAPIError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpc.Do(req)
	if err != nil {
		return "", entity.NewAPIError(err.Error(), 0)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", entity.NewAPIError(err.Error(), resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", normalizeError(resp.StatusCode, body)
	}

	var tokens struct {
		Access string `json:"access"`
		Token  string `json:"token"`
	}
	if err := json.Unmarshal(body, &tokens); err != nil {
		return "", entity.NewAPIError(err.Error(), resp.StatusCode)
	}
	credential := tokens.Access
	if credential == "" {
		credential = tokens.Token
	}
	if credential == "" {
		return "", entity.NewAPIError("login response carried no token", resp.StatusCode)
	}
	return credential, nil
}

// Logout is a no-op: the token variant of the upstream offers no
// revocation endpoint, so logout is purely local.
func (t *BearerTransport) Logout(ctx context.Context, credential string) error {
	return nil
}

func (t *BearerTransport) Apply(req *http.Request, credential string) error {
	req.Header.Set("Authorization", "Bearer "+credential)
	return nil
}

// Username derives the admin identity from the token's JWT claims. The
// parse is unverified on purpose: the client holds no signing key and the
// upstream validates the token on every request anyway.
func (t *BearerTransport) Username(credential string) string {
	var claims jwt.MapClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(credential, &claims); err != nil {
		return ""
	}
	if name, ok := claims["username"].(string); ok && name != "" {
		return name
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

var _ contract.ICredentialTransport = (*BearerTransport)(nil)
