package user

import (
	"net/http"

	"vaultkeeper/internal/domain/user"
)

type registerInput struct {
	Body user.BaseRequest
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int64  `json:"user_id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type loginInput struct {
	Body user.BaseRequest
}

type loginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type logoutInput struct{}

type logoutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      LogoutResponse
}

type LogoutResponse struct {
	Success bool `json:"success"`
}
