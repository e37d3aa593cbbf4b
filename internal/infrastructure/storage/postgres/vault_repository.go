package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/vault"
)

func NewVaultRepository(pool *pgxpool.Pool, log *slog.Logger) *VaultRepository {
	return &VaultRepository{
		pool: pool,
		log:  log.With("component", "vault_repository"),
	}
}

type VaultRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func (r *VaultRepository) GetSetupStatus(ctx context.Context, userID int64) (vault.SetupStatus, error) {
	var status vault.SetupStatus
	err := r.pool.QueryRow(ctx,
		`SELECT vault_setup_completed, vault_setup_completed_at
		 FROM users WHERE id = $1`, userID).
		Scan(&status.Completed, &status.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return status, vault.ErrNotFound
		}
		r.log.Error("failed to get setup status", "user_id", userID, "error", err)
		return status, fmt.Errorf("get setup status: %w", err)
	}
	return status, nil
}

func (r *VaultRepository) CompleteSetup(ctx context.Context, userID int64, recoveryKey *string, completedAt time.Time) error {
	// a nil recovery key leaves the stored blob untouched
	const query = `
		UPDATE users
		SET vault_setup_completed = TRUE,
		    vault_setup_completed_at = $2,
		    recovery_key_encrypted_vault_key = COALESCE($3, recovery_key_encrypted_vault_key),
		    vault_key_generated_at = CASE WHEN $3::text IS NULL THEN vault_key_generated_at ELSE $2 END
		WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, userID, completedAt, recoveryKey)
	if err != nil {
		r.log.Error("failed to complete setup", "user_id", userID, "error", err)
		return fmt.Errorf("complete setup: %w", err)
	}
	if result.RowsAffected() == 0 {
		return vault.ErrNotFound
	}
	return nil
}
