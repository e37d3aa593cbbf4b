package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, filter Filter, cursorID int64, limit int) ([]Entry, error) {
	args := m.Called(ctx, filter, cursorID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Entry), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, userID int64, vaultType VaultType, action string) error {
	args := m.Called(ctx, userID, vaultType, action)
	return args.Error(0)
}

func makeEntries(userID int64, ids ...int64) []Entry {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entries := make([]Entry, len(ids))
	for i, id := range ids {
		// lower ids are newer, matching the descending feed order
		entries[i] = Entry{
			ID:        id,
			UserID:    userID,
			VaultType: VaultTypePersonal,
			Action:    "record_created",
			CreatedAt: base.Add(-time.Duration(id) * time.Minute),
		}
	}
	return entries
}

func TestService_List_LimitParsing(t *testing.T) {
	tests := []struct {
		name          string
		rawLimit      string
		expectedFetch int
	}{
		{name: "omitted limit defaults to 20", rawLimit: "", expectedFetch: 21},
		{name: "zero limit defaults to 20", rawLimit: "0", expectedFetch: 21},
		{name: "negative limit defaults to 20", rawLimit: "-5", expectedFetch: 21},
		{name: "non-numeric limit defaults to 20", rawLimit: "abc", expectedFetch: 21},
		{name: "oversized limit clamps to 100", rawLimit: "500", expectedFetch: 101},
		{name: "in-range limit is honored", rawLimit: "7", expectedFetch: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			service := NewService(mockRepo, slog.Default())

			mockRepo.On("List", mock.Anything, mock.Anything, int64(0), tt.expectedFetch).
				Return([]Entry{}, nil)

			_, err := service.List(context.Background(), 1, Query{Limit: tt.rawLimit})

			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_List_FirstPage(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	// 21 rows back means one more page exists
	ids := make([]int64, 21)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	mockRepo.On("List", mock.Anything, mock.Anything, int64(0), 21).
		Return(makeEntries(1, ids...), nil)

	page, err := service.List(context.Background(), 1, Query{})

	require.NoError(t, err)
	require.Len(t, page.Logs, 20)
	assert.Equal(t, int64(1), page.Logs[0].ID)
	assert.Equal(t, int64(20), page.Logs[19].ID)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "20", *page.NextCursor)

	// strictly descending by created_at, ids as tie-break
	for i := 1; i < len(page.Logs); i++ {
		assert.True(t, page.Logs[i].CreatedAt.Before(page.Logs[i-1].CreatedAt) ||
			(page.Logs[i].CreatedAt.Equal(page.Logs[i-1].CreatedAt) && page.Logs[i].ID < page.Logs[i-1].ID))
	}

	mockRepo.AssertExpectations(t)
}

func TestService_List_LastPage(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	// cursor 20, five remaining rows: fewer than limit+1 means final page
	mockRepo.On("List", mock.Anything, mock.Anything, int64(20), 21).
		Return(makeEntries(1, 21, 22, 23, 24, 25), nil)

	page, err := service.List(context.Background(), 1, Query{Cursor: "20"})

	require.NoError(t, err)
	require.Len(t, page.Logs, 5)
	assert.Equal(t, int64(21), page.Logs[0].ID)
	assert.Equal(t, int64(25), page.Logs[4].ID)
	assert.Nil(t, page.NextCursor)

	mockRepo.AssertExpectations(t)
}

func TestService_List_EmptyResult(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything, mock.Anything, int64(0), 21).
		Return([]Entry{}, nil)

	page, err := service.List(context.Background(), 1, Query{})

	require.NoError(t, err)
	assert.NotNil(t, page.Logs)
	assert.Empty(t, page.Logs)
	assert.Nil(t, page.NextCursor)
}

func TestService_List_UnparsableCursorIgnored(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything, mock.Anything, int64(0), 21).
		Return([]Entry{}, nil)

	_, err := service.List(context.Background(), 1, Query{Cursor: "not-an-id"})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_List_Filters(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f Filter) bool {
		return f.UserID == 42 &&
			f.VaultType == VaultTypeFamily &&
			f.Action == "member_added" &&
			f.From != nil && f.From.Equal(from) &&
			f.To != nil && f.To.Equal(to)
	}), int64(0), 21).Return([]Entry{}, nil)

	_, err := service.List(context.Background(), 42, Query{
		VaultType: "family_vault",
		Action:    "member_added",
		From:      "2025-05-01",
		To:        "2025-06-01",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_List_UnparsableDatesIgnored(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything, mock.MatchedBy(func(f Filter) bool {
		return f.From == nil && f.To == nil
	}), int64(0), 21).Return([]Entry{}, nil)

	_, err := service.List(context.Background(), 1, Query{
		From: "yesterday",
		To:   "99/99/9999",
	})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_List_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything, mock.Anything, int64(0), 21).
		Return(nil, errors.New("connection refused"))

	_, err := service.List(context.Background(), 1, Query{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestService_Record_SwallowsError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Insert", mock.Anything, int64(1), VaultTypeAccount, "user_login").
		Return(errors.New("insert failed"))

	// must not panic or surface the error
	service.Record(context.Background(), 1, VaultTypeAccount, "user_login")

	mockRepo.AssertExpectations(t)
}
