package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/app/server/config"
	"vaultkeeper/internal/domain/session"
	"vaultkeeper/internal/domain/user"
)

type Handler struct {
	service       user.Servicer
	session       session.Servicer
	secureCookies bool
	log           *slog.Logger
	middleware    huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, secureCookies bool, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:       service,
		session:       session,
		secureCookies: secureCookies,
		log:           log,
		middleware:    middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidInput) || errors.Is(err, user.ErrEmailTaken) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		h.log.Error("failed to register user", "error", err)
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &registerOutput{
		Body: RegisterResponse{ID: userID, Status: "Ok"},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, huma.Error401Unauthorized("Invalid credentials")
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("failed to create session", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &loginOutput{
		SetCookie: h.sessionCookie(token),
		Body: LoginResponse{
			Token:  token,
			Status: "Ok",
		},
	}, nil
}

// logout overwrites the session cookie with an empty, immediately expiring
// value. No server-side session state is consulted.
func (h *Handler) logout(_ context.Context, _ *logoutInput) (*logoutOutput, error) {
	cookie := h.sessionCookie("")
	cookie.MaxAge = -1

	return &logoutOutput{
		SetCookie: cookie,
		Body:      LogoutResponse{Success: true},
	}, nil
}

func (h *Handler) sessionCookie(value string) http.Cookie {
	return http.Cookie{
		Name:     config.AuthCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
	}
}
