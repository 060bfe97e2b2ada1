package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/bedylmz/toolshare-fe/internal/api/handlers"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userNameKey contextKey = "userName"

	// HeaderUserID обязательный заголовок аутентификации
	HeaderUserID = "X-User-ID"
	// HeaderUserName необязательное отображаемое имя пользователя
	HeaderUserName = "X-User-Name"
)

const msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"

// Auth извлекает идентификацию пользователя из заголовков запроса.
// Запросы без валидного X-User-ID отклоняются
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		if name := r.Header.Get(HeaderUserName); name != "" {
			ctx = context.WithValue(ctx, userNameKey, name)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetUserName возвращает отображаемое имя пользователя из контекста запроса
func GetUserName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(userNameKey).(string)
	return name, ok
}
