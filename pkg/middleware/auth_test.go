package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
	"github.com/shashiranjanraj/vastra/pkg/rbac"
)

type staticFinder struct {
	user models.User
	err  error
}

func (f staticFinder) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	return f.user, f.err
}

func okHandler(t *testing.T, want models.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromCtx(r.Context())
		require.True(t, ok)
		assert.Equal(t, want.ID, user.ID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRejectsMissingToken(t *testing.T) {
	handler := middleware.Auth(staticFinder{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	handler := middleware.Auth(staticFinder{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthResolvesUser(t *testing.T) {
	user := models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}
	token, err := auth.GenerateToken(user.ID.Hex(), user.Role)
	require.NoError(t, err)

	handler := middleware.Auth(staticFinder{user: user})(okHandler(t, user))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHasRoleForbidsOtherRoles(t *testing.T) {
	guard := rbac.HasRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	customer := models.User{ID: primitive.NewObjectID(), Role: models.RoleCustomer}
	req := httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), customer))
	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	admin := models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	req = httptest.NewRequest(http.MethodGet, "/api/payments", nil)
	req = req.WithContext(middleware.WithUser(req.Context(), admin))
	rec = httptest.NewRecorder()
	guard.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
