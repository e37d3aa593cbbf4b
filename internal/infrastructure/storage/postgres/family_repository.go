package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/family"
)

func NewFamilyRepository(pool *pgxpool.Pool, log *slog.Logger) *FamilyRepository {
	return &FamilyRepository{
		pool: pool,
		log:  log.With("component", "family_repository"),
	}
}

type FamilyRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func (r *FamilyRepository) FindInvitation(ctx context.Context, vaultID int64, token string) (*family.Invitation, error) {
	const query = `
		SELECT v.name, u.display_name, m.role, m.email, m.accepted_at
		FROM family_members m
		JOIN family_vaults v ON v.id = m.vault_id
		JOIN users u ON u.id = v.owner_user_id
		WHERE m.vault_id = $1 AND m.token = $2 AND m.is_active`

	var inv family.Invitation
	err := r.pool.QueryRow(ctx, query, vaultID, token).
		Scan(&inv.VaultName, &inv.InviterName, &inv.Role, &inv.MemberEmail, &inv.AcceptedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, family.ErrNotFound
		}
		r.log.Error("failed to find invitation", "vault_id", vaultID, "error", err)
		return nil, fmt.Errorf("find invitation: %w", err)
	}

	return &inv, nil
}
