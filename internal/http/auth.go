package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"elearn-backend-go/internal/models"
	"elearn-backend-go/internal/services"

	"github.com/jmoiron/sqlx"
)

type contextKey string

const ctxUser contextKey = "user"

// WithAuth validates the Bearer token and loads the referenced user; a token
// whose subject no longer exists is rejected. The full user record is stored
// on the request context.
func WithAuth(tokenService services.TokenService, db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			tokenStr := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			user, err := resolveTokenUser(tokenService, db, tokenStr)
			if err != nil {
				WriteError(w, http.StatusUnauthorized, err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxUser, user)))
		})
	}
}

func resolveTokenUser(tokenService services.TokenService, db *sqlx.DB, tokenStr string) (models.User, error) {
	claims, err := tokenService.ParseToken(tokenStr)
	if err != nil {
		if errors.Is(err, services.ErrTokenExpired) {
			return models.User{}, errors.New("Token expired")
		}
		return models.User{}, errors.New("Invalid token")
	}
	userID := services.ClaimString(claims, "sub")
	if userID == "" {
		return models.User{}, errors.New("Invalid token")
	}
	user, err := services.FetchUser(db, userID)
	if err != nil {
		return models.User{}, errors.New("User not found")
	}
	return user, nil
}

func CurrentUser(r *http.Request) models.User {
	if user, ok := r.Context().Value(ctxUser).(models.User); ok {
		return user
	}
	return models.User{}
}

func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if CurrentUser(r).Role != role {
				WriteError(w, http.StatusForbidden, "Not allowed")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
