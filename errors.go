package main

import "errors"

// Error kinds the handler layer maps onto HTTP statuses.
var (
	ErrValidation         = errors.New("missing or malformed input")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
