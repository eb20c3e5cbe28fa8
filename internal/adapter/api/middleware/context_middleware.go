package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gebeya/internal/session"
)

const (
	// RememberCookie is the persistent scope: it survives a browser
	// restart. SessionCookie lasts only for the browser session. The two
	// carry the same context ID; which one exists reflects the scope the
	// login chose.
	RememberCookie = "gebeya_remember"
	SessionCookie  = "gebeya_session"

	contextKey = "contextID"
	sessionKey = "session"
)

type ContextMiddleware struct {
	store       *session.Store
	rememberTTL time.Duration
}

func NewContextMiddleware(store *session.Store, rememberTTL time.Duration) *ContextMiddleware {
	return &ContextMiddleware{
		store:       store,
		rememberTTL: rememberTTL,
	}
}

// Resolve attaches the browser context ID and, when one is cached, the
// session. The remember cookie takes precedence over the session cookie,
// mirroring the store's scope precedence. A brand-new visitor gets a
// session-scoped context so pre-login state (rate limits, the wizard) has
// a home.
func (m *ContextMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		contextID := ""
		if cookie, err := c.Cookie(RememberCookie); err == nil && cookie.Value != "" {
			contextID = cookie.Value
		} else if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
			contextID = cookie.Value
		}

		if contextID == "" {
			contextID = uuid.New().String()
			c.SetCookie(newSessionCookie(SessionCookie, contextID))
		}

		c.Set(contextKey, contextID)
		if sess, ok := m.store.Load(contextID); ok {
			c.Set(sessionKey, sess)
		}
		return next(c)
	}
}

// Remember rewrites the scope cookies after a login: the chosen scope gets
// the context ID, the other is dropped.
func (m *ContextMiddleware) Remember(c echo.Context, contextID string, remember bool) {
	if remember {
		c.SetCookie(newPersistentCookie(RememberCookie, contextID, m.rememberTTL))
		c.SetCookie(expiredCookie(SessionCookie))
	} else {
		c.SetCookie(newSessionCookie(SessionCookie, contextID))
		c.SetCookie(expiredCookie(RememberCookie))
	}
}

// Forget drops both scope cookies on logout.
func (m *ContextMiddleware) Forget(c echo.Context) {
	c.SetCookie(expiredCookie(RememberCookie))
	c.SetCookie(expiredCookie(SessionCookie))
}

func newSessionCookie(name, value string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func newPersistentCookie(name, value string, ttl time.Duration) *http.Cookie {
	cookie := newSessionCookie(name, value)
	cookie.MaxAge = int(ttl.Seconds())
	return cookie
}

func expiredCookie(name string) *http.Cookie {
	cookie := newSessionCookie(name, "")
	cookie.MaxAge = -1
	return cookie
}
