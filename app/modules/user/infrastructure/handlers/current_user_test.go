package userhandlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authservice "github.com/tomato-game/tomato-api/app/modules/auth/application"
	authhandlers "github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/handlers"
	"github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/hasher"
	authjwt "github.com/tomato-game/tomato-api/app/modules/auth/infrastructure/jwt"
	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
)

// TestGetCurrentUser exercises /users/me through the real auth middleware,
// token provider, and service, with only the repository faked.
func TestGetCurrentUser(t *testing.T) {
	user := &userdb.User{ID: 17, Email: "me@example.com", Username: "me", IsActive: true}
	repo := &userdb.FakeRepository{
		GetUserByIDFunc: func(ctx context.Context, id int64) (*userdb.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, userdb.ErrNotFound
		},
	}

	provider := authjwt.NewProvider("current-user-test-secret")
	svc := authservice.NewService(provider, hasher.NewBcryptHasher(), repo, authservice.Config{}, slog.Default())
	auth := authhandlers.NewAuthHandlers(svc, slog.Default())

	handler := auth.RequireAuth(http.HandlerFunc(NewUserHandlers(&FakeUserService{}, slog.Default()).GetCurrentUser))

	t.Run("valid token", func(t *testing.T) {
		token, err := provider.GenerateToken(user.ID, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"me@example.com"`)
	})

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("token for a different, missing user", func(t *testing.T) {
		token, err := provider.GenerateToken(999, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"detail":"could not validate credentials"}`, rec.Body.String())
	})
}
