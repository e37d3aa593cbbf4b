package vault

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/app/server/api/http/middleware/auth"
	"vaultkeeper/internal/domain/vault"
)

type Handler struct {
	service    vault.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service vault.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.setupStatusOp(), h.setupStatus)
	huma.Register(api, h.completeSetupOp(), h.completeSetup)
}

func (h *Handler) setupStatus(ctx context.Context, _ *setupStatusInput) (*setupStatusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	status, err := h.service.SetupStatus(ctx, userID)
	if err != nil {
		h.log.Error("failed to get setup status", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &setupStatusOutput{
		Body: setupStatusResponse{
			VaultSetupCompleted:   status.Completed,
			VaultSetupCompletedAt: status.CompletedAt,
		},
	}, nil
}

func (h *Handler) completeSetup(ctx context.Context, input *completeSetupInput) (*completeSetupOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.CompleteSetup(ctx, userID, input.Body.RecoveryKeyEncryptedVaultKey); err != nil {
		h.log.Error("failed to complete vault setup", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &completeSetupOutput{
		Body: successResponse{Success: true},
	}, nil
}
