package family

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/app/server/api/http/middleware/auth"
	"vaultkeeper/internal/domain/family"
)

type Handler struct {
	service    family.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	authMW     huma.Middlewares
}

// NewHandler takes two middleware chains: authMW guards the invite
// endpoint, middleware is applied to the public verification endpoint.
func NewHandler(service family.Servicer, log *slog.Logger, mws, authMWs huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
		authMW:     authMWs,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.inviteOp(), h.invite)
	huma.Register(api, h.verifyOp(), h.verify)
}

// invite is a placeholder: invitation delivery is not implemented yet.
// TODO: replace with real invitation creation once email delivery lands.
func (h *Handler) invite(ctx context.Context, input *inviteInput) (*inviteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	h.log.Info("family invite requested (stub)", "user_id", userID, "vault_id", input.VaultID)

	return &inviteOutput{
		Body: inviteResponse{
			Status:  "stub",
			VaultID: input.VaultID,
			Message: "family invitations are not implemented yet",
		},
	}, nil
}

func (h *Handler) verify(ctx context.Context, input *verifyInput) (*verifyOutput, error) {
	inv, err := h.service.VerifyInvitation(ctx, input.VaultID, input.Token)
	if err != nil {
		switch {
		case errors.Is(err, family.ErrTokenRequired):
			return nil, huma.Error400BadRequest("token is required")
		case errors.Is(err, family.ErrNotFound):
			return nil, huma.Error404NotFound("invitation not found or expired")
		case errors.Is(err, family.ErrAlreadyAccepted):
			// historically a 400, kept for client compatibility
			return nil, huma.Error400BadRequest("invitation already accepted")
		default:
			h.log.Error("failed to verify invitation", "vault_id", input.VaultID, "error", err)
			return nil, huma.Error500InternalServerError("Internal server error")
		}
	}

	return &verifyOutput{
		Body: verifyResponse{
			Success:     true,
			VaultName:   inv.VaultName,
			InviterName: inv.InviterName,
			Role:        string(inv.Role),
			MemberEmail: inv.MemberEmail,
		},
	}, nil
}
