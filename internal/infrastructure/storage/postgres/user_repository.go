package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/user"
)

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash, displayName string) (int64, error) {
	var userID int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, display_name) VALUES ($1, $2, $3) RETURNING id`,
		email, passwordHash, displayName).Scan(&userID)

	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, user.ErrEmailTaken
		}
		r.log.Error("failed to create user", "email", email, "error", err)
		return 0, fmt.Errorf("create user: %w", err)
	}

	return userID, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, display_name, created_at
		 FROM users WHERE email = $1`, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.DisplayName, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return u, user.ErrNotFound
		}
		r.log.Error("failed to find user", "email", email, "error", err)
		return u, fmt.Errorf("find user: %w", err)
	}

	return u, nil
}
