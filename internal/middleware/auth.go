package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/cuidja-orders/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

type userIDKey struct{}

// Auth пропускает только запросы с валидным HS256 токеном в Authorization: Bearer.
// sub токена становится идентификатором пользователя.
func Auth(secret []byte) func(next http.Handler) http.Handler {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				utils.WriteError(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			var claims jwt.RegisteredClaims
			_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
				return secret, nil
			})
			if errors.Is(err, jwt.ErrTokenExpired) {
				utils.WriteError(w, "token expired", http.StatusUnauthorized)
				return
			}
			if err != nil || claims.Subject == "" {
				utils.WriteError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.Subject)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		// EventSource в браузере не умеет заголовки, поэтому для стримов токен можно передать в query
		if token := r.URL.Query().Get("access_token"); token != "" {
			return token, true
		}
		return "", false
	}
	return strings.TrimSpace(token), true
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID returns the authenticated user, empty if the request is anonymous.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}
