package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// UserFinder resolves a token's user id to a live account document.
type UserFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

type userKey struct{}

// Auth validates the bearer token and resolves the embedded user id against
// the identity store on every request, so revoked or deleted accounts lose
// access as soon as the document is gone. The resolved user is stored in the
// request context for handlers and the rbac middleware.
func Auth(users UserFinder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				response.Error(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}

			claims, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			id, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			user, err := users.FindByID(r.Context(), id)
			if err != nil {
				response.Error(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			ctx := WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUser stores the authenticated user in ctx.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromCtx returns the authenticated user stored by Auth.
func UserFromCtx(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey{}).(models.User)
	return user, ok
}
