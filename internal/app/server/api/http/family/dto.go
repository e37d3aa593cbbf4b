package family

import "encoding/json"

type inviteInput struct {
	VaultID int64           `path:"vaultId" example:"1" doc:"Family vault id"`
	Body    json.RawMessage `required:"false" doc:"Ignored until invitations are implemented"`
}

type inviteOutput struct {
	Body inviteResponse
}

type inviteResponse struct {
	Status  string `json:"status"`
	VaultID int64  `json:"vaultId"`
	Message string `json:"message"`
}

type verifyInput struct {
	VaultID int64  `path:"vaultId" example:"1" doc:"Family vault id"`
	Token   string `query:"token" required:"false" doc:"Single-use invitation token"`
}

type verifyOutput struct {
	Body verifyResponse
}

type verifyResponse struct {
	Success     bool   `json:"success"`
	VaultName   string `json:"vaultName"`
	InviterName string `json:"inviterName"`
	Role        string `json:"role"`
	MemberEmail string `json:"memberEmail"`
}
