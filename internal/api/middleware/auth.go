package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/santilopez19/TurneroPremium/internal/api/handlers"
	"github.com/santilopez19/TurneroPremium/internal/service/auth/models"
)

type ctxKey int

const (
	ctxKeyAdmin ctxKey = iota
	ctxKeyRequestID
)

// Auth пропускает только запросы с валидным "Authorization: Bearer <token>"
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), principal)))
		})
	}
}

// WithAdmin кладет администратора в контекст
func WithAdmin(ctx context.Context, principal *models.Principal) context.Context {
	return context.WithValue(ctx, ctxKeyAdmin, principal)
}

// GetAdmin возвращает администратора, прошедшего Auth
func GetAdmin(ctx context.Context) (*models.Principal, bool) {
	principal, ok := ctx.Value(ctxKeyAdmin).(*models.Principal)
	return principal, ok && principal != nil
}

// WebhookKey проверяет общий секрет в ?key= (внешний cron)
// Пустой секрет закрывает эндпоинт полностью
func WebhookKey(secret string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.URL.Query().Get("key")
			if secret == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				logger.Warn("%s %s - Invalid webhook key", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
