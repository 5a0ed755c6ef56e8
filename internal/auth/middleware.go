package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/saulo-duarte/sahayak-lambda/internal/config"
)

type contextKey string

const claimsContextKey contextKey = "userClaims"

var ErrNoClaims = errors.New("no user claims in context")

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		cookie, err := r.Cookie("jwt")
		if err != nil {
			log.Warn("Missing jwt cookie on protected route")
			config.Fail(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		claims, err := ValidateJWT(cookie.Value)
		if err != nil {
			log.WithError(err).Warn("Invalid jwt on protected route")
			config.Fail(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), claimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetUserClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, ErrNoClaims
	}
	return claims, nil
}
