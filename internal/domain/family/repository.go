package family

import "context"

type Repository interface {
	// FindInvitation looks up the active member row for (vaultID, token)
	// joined with the vault name and inviter display name. Inactive and
	// missing rows both yield ErrNotFound.
	FindInvitation(ctx context.Context, vaultID int64, token string) (*Invitation, error)
}
