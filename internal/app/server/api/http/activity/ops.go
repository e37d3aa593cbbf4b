package activity

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "activity-list",
		Method:      http.MethodGet,
		Path:        "/api/activity",
		Summary:     "Activity feed of the current user",
		Description: "Paginated, filterable activity log, newest first. Uses keyset pagination: pass the id of the last seen entry as cursor to fetch the next page.",
		Tags:        []string{"activity"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
