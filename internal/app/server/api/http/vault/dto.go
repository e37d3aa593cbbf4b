package vault

import "time"

type setupStatusInput struct{}

type setupStatusOutput struct {
	Body setupStatusResponse
}

type setupStatusResponse struct {
	VaultSetupCompleted   bool       `json:"vaultSetupCompleted"`
	VaultSetupCompletedAt *time.Time `json:"vaultSetupCompletedAt"`
}

type completeSetupInput struct {
	Body completeSetupRequest
}

type completeSetupRequest struct {
	RecoveryKeyEncryptedVaultKey string `json:"recoveryKeyEncryptedVaultKey,omitempty" doc:"Vault key encrypted with the recovery key; stored as an opaque blob"`
}

type completeSetupOutput struct {
	Body successResponse
}

type successResponse struct {
	Success bool `json:"success"`
}
