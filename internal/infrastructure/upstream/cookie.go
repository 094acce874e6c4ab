package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/stocai/blog-admin/internal/domain/contract"
	"github.com/stocai/blog-admin/internal/domain/entity"
)

const csrfFieldName = "csrfmiddlewaretoken"

// CookieTransport implements the Django admin cookie-session variant:
// scrape a CSRF token off the login form, post the form, then repeat the
// scrape on every mutating request and send it as X-CSRFToken. The stored
// credential is the username; the actual session lives in the cookie jar
// shared with the client.
//
// Scraping the token out of server-rendered markup is fragile coupling to
// the upstream's admin templates, but it is what the upstream offers; no
// dedicated token endpoint exists.
type CookieTransport struct {
	baseURL string
	httpc   *http.Client
}

// NewCookieTransport creates the cookie+CSRF credential transport. httpc
// must carry a cookie jar.
func NewCookieTransport(baseURL string, httpc *http.Client) *CookieTransport {
	return &CookieTransport{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

func (t *CookieTransport) Login(ctx context.Context, username, password string) (string, error) {
	token, err := t.scrapeCSRFToken(ctx)
	if err != nil {
		return "", err
	}

	form := url.Values{
		csrfFieldName: {token},
		"username":    {username},
		"password":    {password},
		"next":        {"/admin/"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/admin/login/", strings.NewReader(form.Encode()))
	if err != nil {
		return "", entity.AsAPIError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-CSRFToken", token)

	resp, err := t.httpc.Do(req)
	if err != nil {
		return "", entity.NewAPIError(err.Error(), 0)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return "", entity.NewAPIError("Login failed. Please check your credentials.", resp.StatusCode)
	}

	// The session is in the cookie jar now; the username stands in as the
	// stored credential.
	return username, nil
}

func (t *CookieTransport) Logout(ctx context.Context, credential string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/admin/logout/", nil)
	if err != nil {
		return entity.AsAPIError(err)
	}
	resp, err := t.httpc.Do(req)
	if err != nil {
		return entity.NewAPIError(err.Error(), 0)
	}
	resp.Body.Close()
	return nil
}

// Apply attaches the CSRF token to mutating requests. Safe methods need
// nothing; the session cookie rides the shared jar either way.
func (t *CookieTransport) Apply(req *http.Request, credential string) error {
	switch req.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		token, err := t.scrapeCSRFToken(req.Context())
		if err != nil {
			return err
		}
		req.Header.Set("X-CSRFToken", token)
	}
	return nil
}

func (t *CookieTransport) Username(credential string) string {
	return credential
}

// scrapeCSRFToken fetches the admin login form and pulls the hidden CSRF
// input out of the HTML.
func (t *CookieTransport) scrapeCSRFToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/admin/login/", nil)
	if err != nil {
		return "", entity.AsAPIError(err)
	}
	resp, err := t.httpc.Do(req)
	if err != nil {
		return "", entity.NewAPIError(err.Error(), 0)
	}
	defer resp.Body.Close()

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return "", entity.NewAPIError(err.Error(), resp.StatusCode)
	}
	if token := findCSRFInput(doc); token != "" {
		return token, nil
	}
	return "", entity.NewAPIError("Could not get CSRF token", resp.StatusCode)
}

func findCSRFInput(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "input" {
		var name, value string
		for _, attr := range n.Attr {
			switch attr.Key {
			case "name":
				name = attr.Val
			case "value":
				value = attr.Val
			}
		}
		if name == csrfFieldName {
			return value
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if token := findCSRFInput(child); token != "" {
			return token
		}
	}
	return ""
}

var _ contract.ICredentialTransport = (*CookieTransport)(nil)
