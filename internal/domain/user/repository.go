package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, email, passwordHash, displayName string) (int64, error)
	FindByEmail(ctx context.Context, email string) (User, error)
}
