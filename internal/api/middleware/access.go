package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/access"
)

const (
	msgNoProfile        = "профиль пользователя не найден"
	msgPermissionDenied = "недостаточно прав"
)

// AccessLoader загружает роль и права пользователя
type AccessLoader interface {
	Load(ctx context.Context, userID uuid.UUID) (domain.Access, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// GetAccess возвращает права, загруженные LoadAccess
func GetAccess(ctx context.Context) (domain.Access, bool) {
	a, ok := ctx.Value(accessKey).(domain.Access)
	return a, ok
}

// WithAccess кладет права в контекст
func WithAccess(ctx context.Context, a domain.Access) context.Context {
	return context.WithValue(ctx, accessKey, a)
}

// LoadAccess загружает права пользователя после Auth
// Пользователь без профиля получает 403
func LoadAccess(loader AccessLoader, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			a, err := loader.Load(r.Context(), userID)
			if err != nil {
				if errors.Is(err, access.ErrUnknownUser) {
					logger.Warn("%s %s - user=%s has no profile", r.Method, r.URL.Path, userID)
					handlers.RespondForbidden(w, msgNoProfile)
					return
				}
				logger.Error("%s %s - failed to load access for user=%s: %v", r.Method, r.URL.Path, userID, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccess(r.Context(), a)))
		})
	}
}

// RequirePermission пропускает только пользователей с правом p
func RequirePermission(p domain.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a, ok := GetAccess(r.Context())
			if !ok || !a.Can(p) {
				handlers.RespondForbidden(w, msgPermissionDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
