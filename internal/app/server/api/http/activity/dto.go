package activity

import "vaultkeeper/internal/domain/activity"

// Pagination parameters bind as plain strings: malformed values fall back
// to their defaults instead of failing schema validation.
type listInput struct {
	Limit     string `query:"limit" required:"false" example:"20" doc:"Page size, clamped to [1, 100]; defaults to 20"`
	Cursor    string `query:"cursor" required:"false" doc:"Id of the last entry of the previous page"`
	VaultType string `query:"vaultType" required:"false" example:"personal_vault" doc:"Exact-match vault scope filter"`
	Action    string `query:"action" required:"false" doc:"Exact-match action filter"`
	From      string `query:"from" required:"false" example:"2025-01-01" doc:"Inclusive lower creation-date bound (ISO-8601)"`
	To        string `query:"to" required:"false" example:"2025-12-31" doc:"Inclusive upper creation-date bound (ISO-8601)"`
}

type listOutput struct {
	Body activity.Page
}
