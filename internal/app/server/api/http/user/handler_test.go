package user

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"vaultkeeper/internal/app/server/config"
	"vaultkeeper/internal/domain/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password string) (int64, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, userID int64) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Validate(ctx context.Context, token string) (int64, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(int64), args.Error(1)
}

func newTestHandler(userSvc user.Servicer, sessionSvc *MockSessionService, secure bool) *Handler {
	return NewHandler(userSvc, sessionSvc, secure, slog.Default(), huma.Middlewares{})
}

func TestHandler_register(t *testing.T) {
	mockUser := new(MockUserService)
	handler := newTestHandler(mockUser, new(MockSessionService), false)

	mockUser.On("Register", mock.Anything, "alice@example.com", "Str0ng!pass").
		Return(int64(1), nil)

	output, err := handler.register(context.Background(), &registerInput{
		Body: user.BaseRequest{Email: "alice@example.com", Password: "Str0ng!pass"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Body.ID)
	assert.Equal(t, "Ok", output.Body.Status)
}

func TestHandler_register_InvalidInput(t *testing.T) {
	mockUser := new(MockUserService)
	handler := newTestHandler(mockUser, new(MockSessionService), false)

	mockUser.On("Register", mock.Anything, "bad", "weak").
		Return(int64(0), user.ErrInvalidInput)

	_, err := handler.register(context.Background(), &registerInput{
		Body: user.BaseRequest{Email: "bad", Password: "weak"},
	})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.GetStatus())
}

func TestHandler_login_SetsSessionCookie(t *testing.T) {
	mockUser := new(MockUserService)
	mockSession := new(MockSessionService)
	handler := newTestHandler(mockUser, mockSession, true)

	mockUser.On("Authenticate", mock.Anything, "alice@example.com", "Str0ng!pass").
		Return(user.User{ID: 1, Email: "alice@example.com"}, nil)
	mockSession.On("Create", mock.Anything, int64(1)).Return("session-token", nil)

	output, err := handler.login(context.Background(), &loginInput{
		Body: user.BaseRequest{Email: "alice@example.com", Password: "Str0ng!pass"},
	})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Body.Token)
	assert.Equal(t, config.AuthCookieName, output.SetCookie.Name)
	assert.Equal(t, "session-token", output.SetCookie.Value)
	assert.True(t, output.SetCookie.HttpOnly)
	assert.True(t, output.SetCookie.Secure)
	assert.Equal(t, "/", output.SetCookie.Path)
}

func TestHandler_login_InvalidCredentials(t *testing.T) {
	mockUser := new(MockUserService)
	mockSession := new(MockSessionService)
	handler := newTestHandler(mockUser, mockSession, false)

	mockUser.On("Authenticate", mock.Anything, "alice@example.com", "wrong").
		Return(user.User{}, user.ErrInvalidAuth)

	_, err := handler.login(context.Background(), &loginInput{
		Body: user.BaseRequest{Email: "alice@example.com", Password: "wrong"},
	})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
	mockSession.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHandler_login_SessionError(t *testing.T) {
	mockUser := new(MockUserService)
	mockSession := new(MockSessionService)
	handler := newTestHandler(mockUser, mockSession, false)

	mockUser.On("Authenticate", mock.Anything, "alice@example.com", "Str0ng!pass").
		Return(user.User{ID: 1}, nil)
	mockSession.On("Create", mock.Anything, int64(1)).
		Return("", errors.New("db down"))

	_, err := handler.login(context.Background(), &loginInput{
		Body: user.BaseRequest{Email: "alice@example.com", Password: "Str0ng!pass"},
	})

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 500, statusErr.GetStatus())
}

func TestHandler_logout_ClearsCookie(t *testing.T) {
	handler := newTestHandler(new(MockUserService), new(MockSessionService), false)

	output, err := handler.logout(context.Background(), &logoutInput{})

	require.NoError(t, err)
	assert.True(t, output.Body.Success)
	assert.Equal(t, config.AuthCookieName, output.SetCookie.Name)
	assert.Empty(t, output.SetCookie.Value)
	// MaxAge < 0 serializes as Max-Age=0, expiring the cookie immediately
	assert.Negative(t, output.SetCookie.MaxAge)
	assert.True(t, output.SetCookie.HttpOnly)
}
