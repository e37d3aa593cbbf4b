package vault

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/activity"
)

type Servicer interface {
	SetupStatus(ctx context.Context, userID int64) (SetupStatus, error)
	CompleteSetup(ctx context.Context, userID int64, recoveryKey string) error
}

type Service struct {
	repo     Repository
	activity activity.Servicer
	log      *slog.Logger
}

func NewService(repo Repository, activitySvc activity.Servicer, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		activity: activitySvc,
		log:      log.With("component", "vault_service"),
	}
}

func (s *Service) SetupStatus(ctx context.Context, userID int64) (SetupStatus, error) {
	status, err := s.repo.GetSetupStatus(ctx, userID)
	if err != nil {
		s.log.Error("failed to get setup status", "user_id", userID, "error", err)
		return SetupStatus{}, fmt.Errorf("get setup status: %w", err)
	}
	return status, nil
}

// CompleteSetup marks the user's vault initialized. Re-invoking simply
// overwrites the completion timestamp and, when a recovery key blob is
// supplied, the stored blob. The blob is opaque: only presence is checked.
func (s *Service) CompleteSetup(ctx context.Context, userID int64, recoveryKey string) error {
	var key *string
	if recoveryKey != "" {
		key = &recoveryKey
	}

	if err := s.repo.CompleteSetup(ctx, userID, key, time.Now().UTC()); err != nil {
		s.log.Error("failed to complete setup", "user_id", userID, "error", err)
		return fmt.Errorf("complete setup: %w", err)
	}

	s.activity.Record(ctx, userID, activity.VaultTypePersonal, "vault_setup_completed")
	return nil
}
