package user

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/domain/activity"
)

type Servicer interface {
	Register(ctx context.Context, email, password string) (int64, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	activity  activity.Servicer
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, activitySvc activity.Servicer, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		activity:  activitySvc,
		log:       log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, email, password string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := s.validator.ValidateRegister(email, password); err != nil {
		s.log.Debug("validation failed", "email", email, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	displayName := email[:strings.Index(email, "@")]

	userID, err := s.repo.Create(ctx, email, string(hash), displayName)
	if err != nil {
		return 0, err
	}

	s.activity.Record(ctx, userID, activity.VaultTypeAccount, "user_registered")
	return userID, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := s.validator.ValidateEmail(email); err != nil {
		return User{}, ErrInvalidAuth
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return u, ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return u, ErrInvalidAuth
	}

	s.activity.Record(ctx, u.ID, activity.VaultTypeAccount, "user_login")
	return u, nil
}
