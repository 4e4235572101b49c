package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "github.com/adikhanov/bondify-backend/pkg/jwt"
	"github.com/adikhanov/bondify-backend/pkg/logger"
)

type contextKey string

const userContextKey contextKey = "user"

// AuthMiddleware verifies the Authorization bearer token and attaches the
// decoded claims to the request context. Requests without a valid token are
// rejected with 401.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Log.Warn("Missing Authorization header")
				http.Error(w, "forbidden access", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Log.Warn("Malformed Authorization header")
				http.Error(w, "forbidden access", http.StatusUnauthorized)
				return
			}

			claims, err := jwtutil.ValidateToken(parts[1], secret)
			if err != nil {
				logger.Log.WithError(err).Warn("Token validation failed")
				http.Error(w, "forbidden access", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext returns the verified token claims for the request, or
// nil when the request did not pass the auth middleware.
func GetUserFromContext(ctx context.Context) *jwtutil.Claims {
	claims, ok := ctx.Value(userContextKey).(*jwtutil.Claims)
	if !ok {
		return nil
	}
	return claims
}
