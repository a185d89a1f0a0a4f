package middleware

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

// IssuerKey carries the authenticated token subject (the publishing
// institution) through the request context.
const IssuerKey contextKey = "issuer"

// AuthMiddleware guards institutional write routes with an HS256 bearer
// token signed with JWT_SECRET. With no secret configured (local dev) the
// routes are left open.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			next.ServeHTTP(w, r)
			return
		}

		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

		parsed, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		subject := ""
		if claims, ok := parsed.Claims.(jwt.MapClaims); ok {
			subject, _ = claims.GetSubject()
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), IssuerKey, subject)))
	})
}
