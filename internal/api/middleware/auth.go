package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/peycheff-com/mariia-hub-booking/internal/api/handlers"
)

type ctxKey string

// AdminIDKey ключ контекста с идентификатором администратора
const AdminIDKey ctxKey = "adminID"

const adminHeader = "X-Admin-ID"

// Auth middleware аутентификации администратора.
// Админские маршруты требуют заголовок X-Admin-ID — идентификацию
// выполняет API gateway, сервис доверяет заголовку.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID := strings.TrimSpace(r.Header.Get(adminHeader))
		if adminID == "" {
			handlers.RespondUnauthorized(w, "missing "+adminHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), AdminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminIDFromContext возвращает идентификатор администратора из контекста
func AdminIDFromContext(ctx context.Context) (string, bool) {
	adminID, ok := ctx.Value(AdminIDKey).(string)
	return adminID, ok
}
