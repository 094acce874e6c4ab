package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/stocai/blog-admin/internal/domain/contract"
	"github.com/stocai/blog-admin/internal/domain/entity"
	"github.com/stocai/blog-admin/internal/infrastructure/metrics"
	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

// Client is the single request pipeline to the upstream blog API. Every
// outgoing call gets the current session credential attached; every
// failure comes back as a normalized entity.APIError. A 401/403 response
// additionally fires the auth-expired handler exactly once for that
// request before the call fails.
type Client struct {
	baseURL   string
	httpc     *http.Client
	sessions  contract.ISessionStore
	transport contract.ICredentialTransport
	logger    usecasecontract.IAppLogger

	mu            sync.Mutex
	onAuthExpired func()
}

// NewClient creates the upstream client. httpc is shared with the
// credential transport so cookie sessions ride the same jar.
func NewClient(baseURL string, httpc *http.Client, sessions contract.ISessionStore, transport contract.ICredentialTransport, logger usecasecontract.IAppLogger) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		httpc:     httpc,
		sessions:  sessions,
		transport: transport,
		logger:    logger,
	}
}

// SetAuthExpiredHandler registers the callback fired when the upstream
// rejects the credential. The transport layer only signals; turning the
// signal into a logout and redirect is the auth gate's job.
func (c *Client) SetAuthExpiredHandler(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onAuthExpired = fn
}

func (c *Client) authExpired() {
	c.mu.Lock()
	fn := c.onAuthExpired
	c.mu.Unlock()
	metrics.IncAuthExpired()
	if fn != nil {
		fn()
	}
}

// Do issues one request against the upstream and decodes a successful
// JSON response into out (when out is non-nil). params are folded into
// the query string; body is JSON-encoded when non-nil.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values, body any, out any) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return entity.AsAPIError(err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return entity.AsAPIError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Credential injection is a no-op when no session exists; the call
	// still goes out and the upstream decides what it may serve.
	credential, err := c.sessions.Get()
	if err != nil {
		c.logger.Warnf("session store read failed: %v", err)
	}
	if credential != "" {
		if err := c.transport.Apply(req, credential); err != nil {
			metrics.IncUpstreamErr()
			return entity.AsAPIError(err)
		}
	}

	t0 := time.Now()
	resp, err := c.httpc.Do(req)
	metrics.ObserveUpstreamDuration(time.Since(t0).Seconds())
	if err != nil {
		metrics.IncUpstreamErr()
		return entity.NewAPIError(err.Error(), 0)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.IncUpstreamErr()
		return entity.NewAPIError(err.Error(), resp.StatusCode)
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		c.logger.Warnf("upstream rejected credential: %s %s -> %d", method, path, resp.StatusCode)
		c.authExpired()
		metrics.IncUpstreamErr()
		return normalizeError(resp.StatusCode, respBody)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		metrics.IncUpstreamErr()
		return normalizeError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return entity.NewAPIError(err.Error(), resp.StatusCode)
		}
	}
	return nil
}

// normalizeError reduces an upstream failure response to the one error
// shape the rest of the system consumes. A structured detail field wins;
// anything else falls back to the generic message.
func normalizeError(status int, body []byte) *entity.APIError {
	var payload struct {
		Detail string `json:"detail"`
	}
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
		return entity.NewAPIError(payload.Detail, status)
	}
	return entity.NewAPIError("", status)
}
