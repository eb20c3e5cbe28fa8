package middleware

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/domain/entity"
	"gebeya/pkg/response"
)

// GuardMiddleware is the dashboard gate. It decides which chrome a context
// may see; it is not a security boundary — every upstream call still sends
// the bearer token and the marketplace API enforces authorization.
type GuardMiddleware struct{}

func NewGuardMiddleware() *GuardMiddleware {
	return &GuardMiddleware{}
}

// ContextID returns the browser context attached by Resolve.
func ContextID(c echo.Context) string {
	id, _ := c.Get(contextKey).(string)
	return id
}

// CurrentSession returns the cached session, if the context has one.
func CurrentSession(c echo.Context) (*entity.Session, bool) {
	sess, ok := c.Get(sessionKey).(*entity.Session)
	return sess, ok && sess != nil
}

// CurrentRole is the normalized role token, empty when signed out.
func CurrentRole(c echo.Context) string {
	sess, ok := CurrentSession(c)
	if !ok {
		return ""
	}
	return sess.NormalizedRole()
}

// Authenticated redirects signed-out contexts to login before any
// protected view model is built.
func (m *GuardMiddleware) Authenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := CurrentSession(c); !ok {
			return response.RedirectToLogin(c)
		}
		return next(c)
	}
}

// RequireRole gates one dashboard surface on its role. A mismatch
// redirects to login and renders nothing.
func (m *GuardMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentRole(c) != role {
				return response.RedirectToLogin(c)
			}
			return next(c)
		}
	}
}
