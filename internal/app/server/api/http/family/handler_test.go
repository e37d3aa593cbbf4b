package family

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/app/server/api/http/middleware/auth"
	"vaultkeeper/internal/domain/family"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) VerifyInvitation(ctx context.Context, vaultID int64, token string) (*family.Invitation, error) {
	args := m.Called(ctx, vaultID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*family.Invitation), args.Error(1)
}

func newTestHandler(service family.Servicer) *Handler {
	return NewHandler(service, slog.Default(), huma.Middlewares{}, huma.Middlewares{})
}

func TestHandler_verify_Pending(t *testing.T) {
	mockService := new(MockService)
	handler := newTestHandler(mockService)

	mockService.On("VerifyInvitation", mock.Anything, int64(3), "tok-123").
		Return(&family.Invitation{
			VaultName:   "Smith Family",
			InviterName: "Alice Smith",
			Role:        family.RoleMember,
			MemberEmail: "bob@example.com",
		}, nil)

	output, err := handler.verify(context.Background(), &verifyInput{VaultID: 3, Token: "tok-123"})

	require.NoError(t, err)
	assert.True(t, output.Body.Success)
	assert.Equal(t, "Smith Family", output.Body.VaultName)
	assert.Equal(t, "Alice Smith", output.Body.InviterName)
	assert.Equal(t, "member", output.Body.Role)
	assert.Equal(t, "bob@example.com", output.Body.MemberEmail)
}

func TestHandler_verify_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		serviceErr     error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "missing token",
			token:          "",
			serviceErr:     family.ErrTokenRequired,
			expectedStatus: 400,
			expectedMsg:    "token is required",
		},
		{
			name:           "unknown or inactive invitation",
			token:          "tok-gone",
			serviceErr:     family.ErrNotFound,
			expectedStatus: 404,
			expectedMsg:    "not found",
		},
		{
			name:           "already accepted invitation",
			token:          "tok-used",
			serviceErr:     family.ErrAlreadyAccepted,
			expectedStatus: 400,
			expectedMsg:    "already accepted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			handler := newTestHandler(mockService)

			mockService.On("VerifyInvitation", mock.Anything, int64(3), tt.token).
				Return(nil, tt.serviceErr)

			_, err := handler.verify(context.Background(), &verifyInput{VaultID: 3, Token: tt.token})

			var statusErr huma.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.expectedStatus, statusErr.GetStatus())
			assert.Contains(t, statusErr.Error(), tt.expectedMsg)
		})
	}
}

func TestHandler_invite_Stub(t *testing.T) {
	mockService := new(MockService)
	handler := newTestHandler(mockService)

	ctx := context.WithValue(context.Background(), auth.UserIDKey, int64(1))
	output, err := handler.invite(ctx, &inviteInput{VaultID: 5})

	require.NoError(t, err)
	assert.Equal(t, "stub", output.Body.Status)
	assert.Equal(t, int64(5), output.Body.VaultID)
}

func TestHandler_invite_Unauthenticated(t *testing.T) {
	mockService := new(MockService)
	handler := newTestHandler(mockService)

	_, err := handler.invite(context.Background(), &inviteInput{VaultID: 5})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
}
