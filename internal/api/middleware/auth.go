// Package middleware HTTP middleware: аутентификация администратора и метрики
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/coachpoint/CP-BookingService/internal/api/handlers"
)

// AdminIDHeader заголовок с идентификатором администратора
// Аутентификацию выполняет API-шлюз, сервис доверяет заголовку
const AdminIDHeader = "X-Admin-ID"

type ctxKey int

const adminIDKey ctxKey = iota

// Auth требует заголовок X-Admin-ID и кладёт идентификатор в контекст запроса
// Действия администратора всегда атрибутированы явным актором
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID := strings.TrimSpace(r.Header.Get(AdminIDHeader))
		if adminID == "" {
			handlers.RespondUnauthorized(w, "missing "+AdminIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminID извлекает идентификатор администратора из контекста
func GetAdminID(ctx context.Context) (string, bool) {
	adminID, ok := ctx.Value(adminIDKey).(string)
	return adminID, ok
}
