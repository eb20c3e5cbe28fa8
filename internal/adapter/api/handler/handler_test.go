package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gebeya/internal/adapter/api"
	"gebeya/internal/adapter/api/middleware"
	"gebeya/internal/domain/entity"
	"gebeya/internal/listview"
	"gebeya/internal/session"
	"gebeya/internal/upstream"
	"gebeya/internal/usecase"
	"gebeya/internal/wizard"
)

type fixture struct {
	echo     *echo.Echo
	store    *session.Store
	contexts *middleware.ContextMiddleware
	auth     *usecase.AuthUseCase
	listing  *usecase.ListingUseCase
	seller   *usecase.SellerUseCase
}

func newFixture(t *testing.T, upstreamHandler http.HandlerFunc) *fixture {
	t.Helper()
	server := httptest.NewServer(upstreamHandler)
	t.Cleanup(server.Close)

	apiClient := upstream.NewClient(server.URL, 5*time.Second)
	store := session.NewStore(time.Hour, session.NewBus())
	screens := listview.NewRegistry()
	wizards := wizard.NewManager()

	authUseCase := usecase.NewAuthUseCase(apiClient, store, screens, wizards)
	sellerUseCase := usecase.NewSellerUseCase(apiClient, screens)
	listingUseCase := usecase.NewListingUseCase(apiClient, wizards, sellerUseCase)

	e := echo.New()
	e.Validator = api.NewValidator()

	return &fixture{
		echo:     e,
		store:    store,
		contexts: middleware.NewContextMiddleware(store, time.Hour),
		auth:     authUseCase,
		listing:  listingUseCase,
		seller:   sellerUseCase,
	}
}

func (f *fixture) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	c.Set("contextID", "ctx")
	return c, rec
}

func (f *fixture) signIn(c echo.Context) {
	sess, ok := f.store.Load("ctx")
	if ok {
		c.Set("session", sess)
	}
}

func sessionForTest() entity.Session {
	return entity.Session{
		UserID:    "u1",
		FirstName: "Hana",
		LastName:  "Tesfaye",
		Email:     "h@example.com",
		Role:      entity.RoleSeller,
		Token:     "tok",
	}
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHealthHandler()
	if assert.NoError(t, h.Check(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ok")
	}
}

func TestLoginSetsRememberCookie(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"tok","user":{"_id":"u1","firstName":"Hana","role":"ADMIN"}}`))
	})
	h := NewAuthHandler(f.auth, f.contexts)

	c, rec := f.request(http.MethodPost, "/auth/login",
		`{"email":"h@example.com","password":"secret1","remember":true}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"redirect":"/admin"`)

	byName := map[string]*http.Cookie{}
	for _, cookie := range rec.Result().Cookies() {
		byName[cookie.Name] = cookie
	}
	require.Contains(t, byName, middleware.RememberCookie)
	assert.Equal(t, "ctx", byName[middleware.RememberCookie].Value)
}

func TestLoginRejectsInvalidPayload(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid payloads must not reach the API")
	})
	h := NewAuthHandler(f.auth, f.contexts)

	c, rec := f.request(http.MethodPost, "/auth/login",
		`{"email":"not-an-email","password":"secret1"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWizardDetailsGateKeepsStep(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	h := NewListingHandler(f.listing, f.auth, f.contexts)

	c, rec := f.request(http.MethodPost, "/sell/details",
		`{"category":"Bags","title":"","price":"10"}`)
	require.NoError(t, h.Details(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill in all required fields (Category, Title, and Price).")
	assert.Equal(t, wizard.StepDetails, f.listing.Wizard("ctx").Step())
}

func TestWizardDetailsAdvances(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {})
	h := NewListingHandler(f.listing, f.auth, f.contexts)

	c, rec := f.request(http.MethodPost, "/sell/details",
		`{"category":"Bags","title":"Tote","price":"45.50"}`)
	require.NoError(t, h.Details(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"step":2`)
}

func TestAddRatingRedirectsAnonymous(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("anonymous ratings must not reach the API")
	})
	catalogUseCase := usecase.NewCatalogUseCase(upstream.NewClient("http://127.0.0.1:1", time.Second), "")
	h := NewCatalogHandler(catalogUseCase)

	c, rec := f.request(http.MethodPost, "/product/p1/ratings", `{"score":5}`)
	require.NoError(t, h.AddRating(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestSellerProductsExpiredTokenRedirects(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	f.store.Save("ctx", sessionForTest(), false)
	h := NewSellerHandler(f.seller, f.auth, f.contexts)

	c, rec := f.request(http.MethodGet, "/seller-dashboard/product", "")
	f.signIn(c)
	require.NoError(t, h.Products(c))

	// A stale token clears the cached session and lands on login
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	_, ok := f.store.Load("ctx")
	assert.False(t, ok)
}

func TestSellerProductsMountsAndPages(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"products":[
			{"_id":"p1","category":"Bags","price":10},
			{"_id":"p2","category":"Bags","price":20},
			{"_id":"p3","category":"Shoes","price":30},
			{"_id":"p4","category":"Shoes","price":40},
			{"_id":"p5","category":"Arts","price":50},
			{"_id":"p6","category":"Arts","price":60},
			{"_id":"p7","category":"Beauty","price":70}]}`))
	})
	f.store.Save("ctx", sessionForTest(), false)
	h := NewSellerHandler(f.seller, f.auth, f.contexts)

	c, rec := f.request(http.MethodGet, "/seller-dashboard/product?page=2", "")
	f.signIn(c)
	require.NoError(t, h.Products(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":7`)
	assert.Contains(t, rec.Body.String(), `"totalPages":2`)
	assert.Contains(t, rec.Body.String(), `"p7"`)
}
