package activity

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/app/server/api/http/middleware/auth"
	"vaultkeeper/internal/domain/activity"
)

type Handler struct {
	service    activity.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service activity.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	page, err := h.service.List(ctx, userID, activity.Query{
		Limit:     input.Limit,
		Cursor:    input.Cursor,
		VaultType: input.VaultType,
		Action:    input.Action,
		From:      input.From,
		To:        input.To,
	})
	if err != nil {
		h.log.Error("failed to list activity", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &listOutput{
		Body: page,
	}, nil
}
