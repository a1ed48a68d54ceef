package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
)

const (
	headerAuthorization = "Authorization"
	headerUserID        = "X-User-ID"
	bearerPrefix        = "Bearer "

	msgUnauthorized = "требуется аутентификация"
)

type userIDKey struct{}

var (
	errMissingToken   = errors.New("missing bearer token")
	errInvalidToken   = errors.New("invalid token")
	errInvalidSubject = errors.New("token subject is not a user id")
)

// AuthConfig настройки аутентификации
type AuthConfig struct {
	JWTSecret   string // HS256 секрет провайдера идентификации
	AllowHeader bool   // разрешить X-User-ID без токена (локальная разработка)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет токен провайдера идентификации и кладет ID пользователя в контекст.
// Роль пользователя из токена не берется: ее читают из профиля.
func Auth(cfg AuthConfig, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := authenticate(r, cfg)
			if err != nil {
				logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func authenticate(r *http.Request, cfg AuthConfig) (uuid.UUID, error) {
	header := strings.TrimSpace(r.Header.Get(headerAuthorization))
	if header == "" {
		if cfg.AllowHeader {
			if raw := r.Header.Get(headerUserID); raw != "" {
				id, err := uuid.Parse(raw)
				if err != nil {
					return uuid.Nil, fmt.Errorf("%w: %v", errInvalidSubject, err)
				}
				return id, nil
			}
		}
		return uuid.Nil, errMissingToken
	}

	if !strings.HasPrefix(header, bearerPrefix) {
		return uuid.Nil, errMissingToken
	}

	return parseToken(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)), cfg.JWTSecret)
}

func parseToken(raw, secret string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", errInvalidSubject, err)
	}
	return id, nil
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// GetUserID возвращает ID аутентифицированного пользователя
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok && id != uuid.Nil
}
