package family

import "errors"

var (
	ErrTokenRequired   = errors.New("invitation token is required")
	ErrNotFound        = errors.New("invitation not found or expired")
	ErrAlreadyAccepted = errors.New("invitation already accepted")
)
