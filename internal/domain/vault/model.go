package vault

import "time"

// SetupStatus reflects whether the user finished initializing their
// personal vault.
type SetupStatus struct {
	Completed   bool
	CompletedAt *time.Time
}
