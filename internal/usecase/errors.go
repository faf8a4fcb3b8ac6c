package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	ErrRoleNotFound   = errors.New("role requirement not found")
	ErrTalentNotFound = errors.New("talent profile not found")
	ErrRoleLocked     = errors.New("role requirement locked, use amendment")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
)
