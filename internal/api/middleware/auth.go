package middleware

import (
	"context"
	"net/http"

	"codedrill/internal/common"
	"codedrill/internal/domain/model"
	"codedrill/internal/domain/repository"
)

type contextKey string

const userCtxKey contextKey = "authUser"

// Auth guards routes by resolving the bearer of the session token. The
// Authorization header carries the raw token value, no scheme prefix.
type Auth struct {
	userRepo repository.UserRepository
}

func NewAuth(userRepo repository.UserRepository) *Auth {
	return &Auth{userRepo: userRepo}
}

// Authenticator rejects the request with 401 unless the supplied token
// matches the current token of some account. The resolved user is attached
// to the request context for downstream handlers.
func (a *Auth) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			return
		}

		user, err := a.userRepo.FindByToken(r.Context(), token)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly runs after Authenticator and rejects non-admin accounts.
func (a *Auth) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || user.Role != model.RoleAdmin {
			common.RespondWithError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext returns the account resolved by Authenticator.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*model.User)
	return user, ok
}
