package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/login"

// RouteGuard gates the protected routes on auth-gate state. While the
// gate is still initializing it answers a neutral placeholder instead of
// deciding, so no request is bounced to login before the startup check
// resolves. Logged-out requests are redirected to the login view with the
// originally requested location preserved in the next parameter.
func RouteGuard(gate usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := gate.State()
		if state.IsLoading {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": "Loading..."})
			return
		}
		if !state.IsLoggedIn {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusFound, LoginPath+"?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}
