package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-stable-ramp/internal/jwt"
	"github.com/sbilibin2017/gw-stable-ramp/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type userIDKey struct{}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the user id stored by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey{}).(string)
	return userID, ok && userID != ""
}

// AuthMiddleware returns a middleware that validates the bearer JWT issued by
// the wallet provider and puts its user id into the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				reject(w, r, "missing bearer token", err)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				reject(w, r, "invalid bearer token", err)
				return
			}
			if claims.UserID == "" {
				reject(w, r, "token carries no user id", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, claims.UserID)))
		})
	}
}

// reject answers 401 in the same shape as handler errors.
func reject(w http.ResponseWriter, r *http.Request, reason string, err error) {
	logger.Log.Warnw("authorization failed",
		"request_id", RequestIDFromContext(r.Context()),
		"uri", r.RequestURI,
		"reason", reason,
		"error", err,
	)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="gw-stable-ramp"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": reason,
		"code":  "UNAUTHORIZED",
	})
}
