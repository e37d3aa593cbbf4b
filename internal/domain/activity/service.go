package activity

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/exp/slog"
)

const (
	defaultLimit = 20
	minLimit     = 1
	maxLimit     = 100
)

// Query carries the raw, untrusted listing parameters as received on the
// wire. Parsing is deliberately lenient: anything malformed falls back to
// its default instead of failing the request.
type Query struct {
	Limit     string
	Cursor    string
	VaultType string
	Action    string
	From      string
	To        string
}

type Servicer interface {
	List(ctx context.Context, userID int64, q Query) (Page, error)
	Record(ctx context.Context, userID int64, vaultType VaultType, action string)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "activity_service"),
	}
}

// List returns one page of the caller's activity feed, newest first.
// It fetches limit+1 rows: the extra row only signals that another page
// exists and is dropped from the result, with the last kept entry's id
// becoming the next cursor.
func (s *Service) List(ctx context.Context, userID int64, q Query) (Page, error) {
	limit := parseLimit(q.Limit)

	filter := Filter{
		UserID:    userID,
		VaultType: VaultType(q.VaultType),
		Action:    q.Action,
		From:      parseDate(q.From),
		To:        parseDate(q.To),
	}

	entries, err := s.repo.List(ctx, filter, parseCursor(q.Cursor), limit+1)
	if err != nil {
		s.log.Error("failed to list activity", "user_id", userID, "error", err)
		return Page{}, fmt.Errorf("list activity: %w", err)
	}

	page := Page{Logs: entries}
	if len(entries) > limit {
		page.Logs = entries[:limit]
		cursor := strconv.FormatInt(page.Logs[limit-1].ID, 10)
		page.NextCursor = &cursor
	}
	if page.Logs == nil {
		page.Logs = []Entry{}
	}

	return page, nil
}

// Record appends an entry for an auditable action. Failures are logged and
// swallowed so the action being audited is never rolled back over its log.
func (s *Service) Record(ctx context.Context, userID int64, vaultType VaultType, action string) {
	if err := s.repo.Insert(ctx, userID, vaultType, action); err != nil {
		s.log.Error("failed to record activity",
			"user_id", userID, "action", action, "error", err)
	}
}

func parseLimit(raw string) int {
	if raw == "" {
		return defaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return defaultLimit
	}
	if limit < minLimit {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func parseCursor(raw string) int64 {
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// parseDate accepts a bare date or a full RFC3339 timestamp. An unparsable
// value acts as an absent bound.
func parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
