package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/app/server/config"
	"vaultkeeper/internal/domain/session"
)

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const UserIDKey contextKey = "userID"

// Middleware резолвит личность вызывающего: сначала Bearer-токен,
// затем сессионная кука. Без валидного токена — 401.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := extractToken(ctx)
		if token == "" {
			a.reject(ctx)
			return
		}

		userID, err := a.session.Validate(ctx.Context(), token)
		if err != nil {
			a.log.Debug("session validation failed", "error", err)
			a.reject(ctx)
			return
		}

		newCtx := context.WithValue(ctx.Context(), UserIDKey, userID)
		newHumaCtx := huma.WithContext(ctx, newCtx)

		next(newHumaCtx)
	}
}

func (a *Auth) reject(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	w := ctx.BodyWriter()
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": "Unauthorized",
	}); err != nil {
		a.log.Error("failed to encode 401 body", "error", err)
	}
}

func extractToken(ctx huma.Context) string {
	header := ctx.Header("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := huma.ReadCookie(ctx, config.AuthCookieName)
	if err != nil || cookie == nil {
		return ""
	}
	return cookie.Value
}

func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}
