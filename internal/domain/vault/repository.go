package vault

import (
	"context"
	"time"
)

type Repository interface {
	// GetSetupStatus reads the setup flag and completion timestamp of a user.
	GetSetupStatus(ctx context.Context, userID int64) (SetupStatus, error)

	// CompleteSetup marks the vault initialized at completedAt, overwriting
	// any earlier completion. A non-nil recoveryKey replaces the stored
	// recovery-key-encrypted vault key together with its generation time.
	CompleteSetup(ctx context.Context, userID int64, recoveryKey *string, completedAt time.Time) error
}
