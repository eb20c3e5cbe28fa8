package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gebeya/internal/domain/entity"
	"gebeya/internal/listview"
	"gebeya/internal/session"
	"gebeya/internal/upstream"
	"gebeya/internal/wizard"
	"gebeya/pkg/errors"
)

type authFixture struct {
	uc      *AuthUseCase
	store   *session.Store
	screens *listview.Registry
	wizards *wizard.Manager
}

func newAuthFixture(t *testing.T, handler http.HandlerFunc) (*authFixture, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	api := upstream.NewClient(server.URL, 5*time.Second)
	store := session.NewStore(time.Hour, session.NewBus())
	screens := listview.NewRegistry()
	wizards := wizard.NewManager()

	return &authFixture{
		uc:      NewAuthUseCase(api, store, screens, wizards),
		store:   store,
		screens: screens,
		wizards: wizards,
	}, server
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestLoginCachesSessionAndRoutesByRole(t *testing.T) {
	f, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok","user":{"_id":"u1","firstName":"Hana","role":"superadmin"}}`))
	})

	result, err := f.uc.Login(context.Background(), "ctx", LoginInput{
		Email:    "h@example.com",
		Password: "secret",
		Remember: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "/superadmin", result.Redirect)
	assert.Equal(t, entity.RoleSuperAdmin, result.Session.Role)

	cached, ok := f.store.Load("ctx")
	require.True(t, ok)
	assert.Equal(t, "u1", cached.UserID)
	assert.Equal(t, "tok", cached.Token)
	assert.True(t, cached.Remember)
}

func TestLoginFallsBackToTokenClaimForUserID(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"id": "claim-id"})
	f, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"` + token + `","user":{"firstName":"Hana","role":"SELLER"}}`))
	})

	result, err := f.uc.Login(context.Background(), "ctx", LoginInput{Email: "h@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "claim-id", result.Session.UserID)
}

func TestLoginMapsRejectionToFriendlyMessage(t *testing.T) {
	f, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	})

	_, err := f.uc.Login(context.Background(), "ctx", LoginInput{Email: "h@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Contains(t, err.Error(), "Email or Password Incorrect.")
}

func TestLoginPassesThroughOutage(t *testing.T) {
	api := upstream.NewClient("http://127.0.0.1:1", time.Second)
	uc := NewAuthUseCase(api, session.NewStore(time.Hour, session.NewBus()), listview.NewRegistry(), wizard.NewManager())

	_, err := uc.Login(context.Background(), "ctx", LoginInput{Email: "h@example.com", Password: "secret"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "UPSTREAM_UNAVAILABLE"))
}

func TestRegisterLandsOnStorefront(t *testing.T) {
	f, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok","user":{"_id":"u2","firstName":"Sara","role":"BUYER"}}`))
	})

	result, err := f.uc.Register(context.Background(), "ctx", RegisterInput{
		FirstName:   "Sara",
		LastName:    "Alem",
		Email:       "s@example.com",
		PhoneNumber: "0911",
		Password:    "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "/", result.Redirect)
}

func TestLogoutClearsEverything(t *testing.T) {
	f, _ := newAuthFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok","user":{"_id":"u1","role":"SELLER"}}`))
	})

	_, err := f.uc.Login(context.Background(), "ctx", LoginInput{Email: "h@example.com", Password: "secret"})
	require.NoError(t, err)

	f.screens.Put("ctx", "seller:products", listview.NewScreen([]entity.Product{{ID: "p1"}}, 6,
		func(p entity.Product) string { return p.ID },
		func(p entity.Product) []string { return nil }))
	f.wizards.Get("ctx").SetDetails(wizard.Details{Title: "Tote"})

	f.uc.Logout("ctx")

	_, ok := f.store.Load("ctx")
	assert.False(t, ok)
	_, ok = listview.Lookup[entity.Product](f.screens, "ctx", "seller:products")
	assert.False(t, ok)
	assert.Equal(t, wizard.Details{}, f.wizards.Get("ctx").Details())
}
