package family

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) inviteOp() huma.Operation {
	return huma.Operation{
		OperationID: "family-invite",
		Method:      http.MethodPost,
		Path:        "/api/family/{vaultId}/invite",
		Summary:     "Invite a member to a family vault (stub)",
		Tags:        []string{"family"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.authMW,
	}
}

func (h *Handler) verifyOp() huma.Operation {
	return huma.Operation{
		OperationID: "family-invite-verify",
		Method:      http.MethodGet,
		Path:        "/api/family/{vaultId}/verify",
		Summary:     "Verify a family invitation token",
		Description: "Public endpoint used by the invitation landing page before the invitee has an account.",
		Tags:        []string{"family"},
		Middlewares: h.middleware,
	}
}
