package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

const (
	msgMissingAuthHeader = "Missing authorization header"
	msgUnauthorized      = "Unauthorized"
)

type contextKey string

const (
	userIDKey contextKey = "user-id"
	accessKey contextKey = "access"
)

// GetUserID возвращает ID пользователя, проверенный Auth
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// TokenVerifier проверяет bearer токены провайдера аутентификации (HS256, sub = ID пользователя)
type TokenVerifier struct {
	secret []byte
	issuer string
}

func NewTokenVerifier(secret, issuer string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret), issuer: issuer}
}

// Verify возвращает ID пользователя из подписанного токена
func (v *TokenVerifier) Verify(tokenString string) (uuid.UUID, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.New("subject is not a user id")
	}
	return id, nil
}

// bearerToken токен из заголовка Authorization
// Браузер не умеет ставить заголовки при открытии websocket, поэтому для upgrade запроса
// допускается query параметр access_token
func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if websocket.IsWebSocketUpgrade(r) {
		return r.URL.Query().Get("access_token")
	}
	return ""
}

// Auth проверяет заголовок Authorization: Bearer <token>
// 401 без заголовка и при невалидном токене
func Auth(verifier *TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				handlers.RespondUnauthorized(w, msgMissingAuthHeader)
				return
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
