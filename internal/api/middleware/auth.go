package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agendasis/AgendaSIS-BookingService/internal/api/handlers"
	"github.com/agendasis/AgendaSIS-BookingService/internal/domain"
)

type actorCtxKey struct{}

// Claims клеймы JWT токена, выдаваемого auth-сервисом AgendaSIS
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ActorFromContext возвращает аутентифицированного актора из context.
// Второе значение false означает, что запрос не проходил через Auth.
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(domain.Actor)
	return actor, ok
}

// ContextWithActor кладет актора в context (используется Auth и тестами handlers)
func ContextWithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, actor)
}

// Auth проверяет Bearer JWT (HS256) и кладет актора в context запроса
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handlers.RespondError(w, http.StatusUnauthorized, "требуется авторизация")
				return
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок Authorization")
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				handlers.RespondError(w, http.StatusUnauthorized, "недействительный токен")
				return
			}

			role := domain.Role(strings.ToLower(claims.Role))
			if claims.UserID <= 0 || !role.IsValid() {
				handlers.RespondError(w, http.StatusUnauthorized, "недействительный токен")
				return
			}

			actor := domain.Actor{UserID: claims.UserID, Role: role}
			next.ServeHTTP(w, r.WithContext(ContextWithActor(r.Context(), actor)))
		})
	}
}
