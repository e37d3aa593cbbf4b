package vault

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) setupStatusOp() huma.Operation {
	return huma.Operation{
		OperationID: "vault-setup-status",
		Method:      http.MethodGet,
		Path:        "/api/vault/setup",
		Summary:     "Vault setup status",
		Tags:        []string{"vault"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) completeSetupOp() huma.Operation {
	return huma.Operation{
		OperationID: "vault-setup-complete",
		Method:      http.MethodPost,
		Path:        "/api/vault/setup",
		Summary:     "Mark vault setup as completed",
		Description: "Idempotent: re-invoking overwrites the completion timestamp and, when supplied, the stored recovery-key-encrypted vault key.",
		Tags:        []string{"vault"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
