package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gebeya/internal/domain/entity"
	"gebeya/internal/session"
)

func newTestContext(t *testing.T, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestResolveMintsContextForNewVisitor(t *testing.T) {
	store := session.NewStore(time.Hour, session.NewBus())
	m := NewContextMiddleware(store, time.Hour)

	c, rec := newTestContext(t)
	require.NoError(t, m.Resolve(okHandler)(c))

	assert.NotEmpty(t, ContextID(c))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.Equal(t, ContextID(c), cookies[0].Value)
}

func TestResolvePrefersRememberCookie(t *testing.T) {
	store := session.NewStore(time.Hour, session.NewBus())
	store.Save("remembered", entity.Session{UserID: "u1", Role: entity.RoleSeller}, true)
	m := NewContextMiddleware(store, time.Hour)

	c, _ := newTestContext(t,
		&http.Cookie{Name: RememberCookie, Value: "remembered"},
		&http.Cookie{Name: SessionCookie, Value: "transient"},
	)
	require.NoError(t, m.Resolve(okHandler)(c))

	assert.Equal(t, "remembered", ContextID(c))
	sess, ok := CurrentSession(c)
	require.True(t, ok)
	assert.Equal(t, "u1", sess.UserID)
}

func TestRememberSwapsScopes(t *testing.T) {
	store := session.NewStore(time.Hour, session.NewBus())
	m := NewContextMiddleware(store, time.Hour)

	c, rec := newTestContext(t)
	m.Remember(c, "ctx", true)

	byName := map[string]*http.Cookie{}
	for _, cookie := range rec.Result().Cookies() {
		byName[cookie.Name] = cookie
	}
	require.Contains(t, byName, RememberCookie)
	require.Contains(t, byName, SessionCookie)
	assert.Equal(t, "ctx", byName[RememberCookie].Value)
	assert.Positive(t, byName[RememberCookie].MaxAge)
	assert.Negative(t, byName[SessionCookie].MaxAge)
}

func TestForgetDropsBothCookies(t *testing.T) {
	store := session.NewStore(time.Hour, session.NewBus())
	m := NewContextMiddleware(store, time.Hour)

	c, rec := newTestContext(t)
	m.Forget(c)

	for _, cookie := range rec.Result().Cookies() {
		assert.Negative(t, cookie.MaxAge)
	}
	assert.Len(t, rec.Result().Cookies(), 2)
}

func TestAuthenticatedRedirectsAnonymous(t *testing.T) {
	guard := NewGuardMiddleware()

	c, rec := newTestContext(t)
	require.NoError(t, guard.Authenticated(okHandler)(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthenticatedPassesSignedIn(t *testing.T) {
	guard := NewGuardMiddleware()

	c, rec := newTestContext(t)
	c.Set(sessionKey, &entity.Session{UserID: "u1", Role: entity.RoleSeller})
	require.NoError(t, guard.Authenticated(okHandler)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	guard := NewGuardMiddleware()

	cases := []struct {
		name     string
		sess     *entity.Session
		required string
		passes   bool
	}{
		{"admin on admin surface", &entity.Session{Role: "ADMIN"}, entity.RoleAdmin, true},
		{"case-insensitive match", &entity.Session{Role: "admin"}, entity.RoleAdmin, true},
		{"seller on admin surface", &entity.Session{Role: "SELLER"}, entity.RoleAdmin, false},
		{"admin on superadmin surface", &entity.Session{Role: "ADMIN"}, entity.RoleSuperAdmin, false},
		{"anonymous", nil, entity.RoleAdmin, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTestContext(t)
			if tc.sess != nil {
				c.Set(sessionKey, tc.sess)
			}
			require.NoError(t, guard.RequireRole(tc.required)(okHandler)(c))

			if tc.passes {
				assert.Equal(t, http.StatusOK, rec.Code)
			} else {
				assert.Equal(t, http.StatusFound, rec.Code)
				assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
			}
		})
	}
}

func TestCurrentRoleEmptyWhenSignedOut(t *testing.T) {
	c, _ := newTestContext(t)
	assert.Equal(t, "", CurrentRole(c))
}
