package family

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	VerifyInvitation(ctx context.Context, vaultID int64, token string) (*Invitation, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "family_service"),
	}
}

// VerifyInvitation resolves an invitation token against a vault. Three
// outcomes: unknown or inactive token, token already accepted, or a
// pending invitation. Read-only; acceptance happens elsewhere.
func (s *Service) VerifyInvitation(ctx context.Context, vaultID int64, token string) (*Invitation, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	inv, err := s.repo.FindInvitation(ctx, vaultID, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find invitation", "vault_id", vaultID, "error", err)
		return nil, fmt.Errorf("find invitation: %w", err)
	}

	if inv.AcceptedAt != nil {
		return nil, ErrAlreadyAccepted
	}

	return inv, nil
}
