package user

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	MaxEmailLen    = 254
	MinPasswordLen = 8
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(email, password string) error
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}

type CredentialsValidator struct {
	requireSpecialChar bool
	requireDigit       bool
	requireUpper       bool
	requireLower       bool
}

// NewCredentialsValidator создает новый валидатор
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{
		requireSpecialChar: true,
		requireDigit:       true,
		requireUpper:       true,
		requireLower:       true,
	}
}

// ValidateRegister валидирует данные для регистрации
func (v *CredentialsValidator) ValidateRegister(email, password string) error {
	if err := v.ValidateEmail(email); err != nil {
		return fmt.Errorf("email validation failed: %w", err)
	}

	if err := v.ValidatePassword(password); err != nil {
		return fmt.Errorf("password validation failed: %w", err)
	}

	return nil
}

// ValidateEmail валидирует email
func (v *CredentialsValidator) ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must be at most %d characters", MaxEmailLen)
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("email must contain a local part and a domain")
	}

	if strings.ContainsAny(email, " \t\n") {
		return fmt.Errorf("email cannot contain whitespace")
	}

	return nil
}

// ValidatePassword валидирует пароль
func (v *CredentialsValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	hasLower := false
	hasUpper := false
	hasDigit := false
	hasSpecial := false

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}

		if hasLower && hasUpper && hasDigit && hasSpecial {
			break
		}
	}

	if v.requireLower && !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}

	if v.requireUpper && !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}

	if v.requireDigit && !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	if v.requireSpecialChar && !hasSpecial {
		return fmt.Errorf("password must contain at least one special character")
	}

	return nil
}
