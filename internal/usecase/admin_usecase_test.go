package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gebeya/internal/domain/entity"
	"gebeya/internal/listview"
	"gebeya/internal/upstream"
	"gebeya/pkg/errors"
)

func adminFixture(t *testing.T, handler http.HandlerFunc) *AdminUseCase {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewAdminUseCase(upstream.NewClient(server.URL, 5*time.Second), listview.NewRegistry())
}

func adminSession() *entity.Session {
	return &entity.Session{UserID: "admin1", Role: entity.RoleAdmin, Token: "tok"}
}

func moderationBody(n int, ownerID string) []byte {
	products := make([]map[string]interface{}, n)
	for i := range products {
		products[i] = map[string]interface{}{
			"_id":      fmt.Sprintf("p%d", i+1),
			"title":    fmt.Sprintf("Item %d", i+1),
			"isActive": true,
			"userId":   map[string]interface{}{"_id": ownerID},
		}
	}
	body, _ := json.Marshal(map[string]interface{}{"products": products})
	return body
}

func TestMountProductsPagesAtFive(t *testing.T) {
	uc := adminFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(moderationBody(7, "s1"))
	})

	screen, err := uc.MountProducts(context.Background(), "ctx", adminSession())
	require.NoError(t, err)

	page := screen.Page()
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 2, page.TotalPages)
}

func TestDeleteProductPatchesTable(t *testing.T) {
	var deleted atomic.Bool
	uc := adminFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deleted.Store(true)
			w.Write([]byte(`{"message":"deleted"}`))
			return
		}
		w.Write(moderationBody(6, "s1"))
	})

	screen, err := uc.MountProducts(context.Background(), "ctx", adminSession())
	require.NoError(t, err)
	screen.SetPage(2)

	require.NoError(t, uc.DeleteProduct(context.Background(), "ctx", adminSession(), "p6"))
	assert.True(t, deleted.Load())

	// The only row on page 2 is gone, so the view steps back
	page := screen.Page()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 5, page.Total)
}

func TestDeleteProductKeepsRowOnFailure(t *testing.T) {
	uc := adminFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"nope"}`))
			return
		}
		w.Write(moderationBody(3, "s1"))
	})

	screen, err := uc.MountProducts(context.Background(), "ctx", adminSession())
	require.NoError(t, err)

	err = uc.DeleteProduct(context.Background(), "ctx", adminSession(), "p2")
	require.Error(t, err)
	assert.Equal(t, 3, screen.Page().Total)

	// The in-flight guard releases after the failed request
	assert.True(t, screen.BeginAction("p2"))
	screen.EndAction("p2")
}

func TestDeleteProductRequiresMountedScreen(t *testing.T) {
	uc := adminFixture(t, func(w http.ResponseWriter, r *http.Request) {})

	err := uc.DeleteProduct(context.Background(), "ctx", adminSession(), "p1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestWarnSellerDeactivatesAllRowsAtThreshold(t *testing.T) {
	uc := adminFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			w.Write([]byte(`{"warnings":5,"isActive":false}`))
			return
		}
		w.Write(moderationBody(4, "s1"))
	})

	screen, err := uc.MountProducts(context.Background(), "ctx", adminSession())
	require.NoError(t, err)

	result, err := uc.WarnSeller(context.Background(), "ctx", adminSession(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 5, result.Warnings)

	for _, p := range screen.Page().Items {
		assert.False(t, p.IsActive)
	}
}

func TestWarnSellerBelowThresholdKeepsRowsActive(t *testing.T) {
	uc := adminFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			w.Write([]byte(`{"warnings":2,"isActive":true}`))
			return
		}
		w.Write(moderationBody(2, "s1"))
	})

	screen, err := uc.MountProducts(context.Background(), "ctx", adminSession())
	require.NoError(t, err)

	_, err = uc.WarnSeller(context.Background(), "ctx", adminSession(), "s1")
	require.NoError(t, err)

	for _, p := range screen.Page().Items {
		assert.True(t, p.IsActive)
	}
}

func TestActivateUserResetsRow(t *testing.T) {
	uc := adminFixture(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.Write([]byte(`{"message":"activated"}`))
			return
		}
		w.Write([]byte(`{"users":[{"_id":"u1","firstName":"Abel","lastName":"K","warnings":5,"isActive":false}]}`))
	})

	screen, err := uc.MountUsers(context.Background(), "ctx", adminSession())
	require.NoError(t, err)

	require.NoError(t, uc.ActivateUser(context.Background(), "ctx", adminSession(), "u1"))

	user, ok := screen.Get("u1")
	require.True(t, ok)
	assert.True(t, user.IsActive)
	assert.Zero(t, user.Warnings)
}

func TestSuperAdminDashboardMountsAdminTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"stats":{"totalAdmins":1,"totalUsers":10,"activeUsers":9,"inactiveUsers":1},"admins":[{"_id":"a1","firstName":"Sara","lastName":"Alem"}]}`))
	}))
	t.Cleanup(server.Close)
	uc := NewSuperAdminUseCase(upstream.NewClient(server.URL, 5*time.Second), listview.NewRegistry())

	sess := &entity.Session{UserID: "sa", Role: entity.RoleSuperAdmin, Token: "tok"}
	overview, err := uc.MountDashboard(context.Background(), "ctx", sess)
	require.NoError(t, err)
	assert.Equal(t, 10, overview.Stats.TotalUsers)

	screen, ok := uc.Admins("ctx")
	require.True(t, ok)
	assert.Equal(t, 1, screen.Len())
}

func TestCreateAdminAppendsToMountedTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"admin":{"_id":"a2","firstName":"New","lastName":"Admin"}}`))
			return
		}
		w.Write([]byte(`{"stats":{},"admins":[{"_id":"a1","firstName":"Sara","lastName":"Alem"}]}`))
	}))
	t.Cleanup(server.Close)
	uc := NewSuperAdminUseCase(upstream.NewClient(server.URL, 5*time.Second), listview.NewRegistry())

	sess := &entity.Session{UserID: "sa", Role: entity.RoleSuperAdmin, Token: "tok"}
	_, err := uc.MountDashboard(context.Background(), "ctx", sess)
	require.NoError(t, err)

	created, err := uc.CreateAdmin(context.Background(), "ctx", sess, CreateAdminInput{
		FirstName: "New", LastName: "Admin", Email: "n@example.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "a2", created.ID)

	screen, _ := uc.Admins("ctx")
	assert.Equal(t, 2, screen.Len())
}
