package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/activity"
)

func NewActivityRepository(pool *pgxpool.Pool, log *slog.Logger) *ActivityRepository {
	return &ActivityRepository{
		pool: pool,
		log:  log.With("component", "activity_repository"),
	}
}

type ActivityRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// List implements keyset pagination over (created_at DESC, id DESC). The
// cursor row's own sort key is resolved in a subquery, so entries strictly
// after it are returned even when timestamps collide.
func (r *ActivityRepository) List(ctx context.Context, filter activity.Filter, cursorID int64, limit int) ([]activity.Entry, error) {
	var (
		conds []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	conds = append(conds, "user_id = "+arg(filter.UserID))
	if filter.VaultType != "" {
		conds = append(conds, "vault_type = "+arg(string(filter.VaultType)))
	}
	if filter.Action != "" {
		conds = append(conds, "action = "+arg(filter.Action))
	}
	if filter.From != nil {
		conds = append(conds, "created_at >= "+arg(*filter.From))
	}
	if filter.To != nil {
		conds = append(conds, "created_at <= "+arg(*filter.To))
	}
	if cursorID > 0 {
		p := arg(cursorID)
		conds = append(conds, fmt.Sprintf(
			"(created_at, id) < (SELECT created_at, id FROM activity_logs WHERE id = %s)", p))
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, vault_type, action, created_at
		FROM activity_logs
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT %s`,
		strings.Join(conds, " AND "), arg(limit))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to list activity", "user_id", filter.UserID, "error", err)
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var e activity.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.VaultType, &e.Action, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity entries: %w", err)
	}

	return entries, nil
}

func (r *ActivityRepository) Insert(ctx context.Context, userID int64, vaultType activity.VaultType, action string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO activity_logs (user_id, vault_type, action) VALUES ($1, $2, $3)`,
		userID, string(vaultType), action)
	if err != nil {
		r.log.Error("failed to insert activity",
			"user_id", userID, "action", action, "error", err)
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}
