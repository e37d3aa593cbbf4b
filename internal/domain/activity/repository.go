package activity

import "context"

type Repository interface {
	// List returns up to limit entries matching the filter, ordered by
	// created_at DESC with id DESC as tie-break. A non-zero cursorID
	// restricts the result to entries strictly after the cursor entry
	// in that order; the cursor entry itself is excluded.
	List(ctx context.Context, filter Filter, cursorID int64, limit int) ([]Entry, error)

	// Insert appends a new immutable entry.
	Insert(ctx context.Context, userID int64, vaultType VaultType, action string) error
}
