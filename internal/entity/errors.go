package entity

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotConfigured = errors.New("backend is not configured")
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoProfile          = errors.New("no profile found for this account")
	ErrNoDepartmentAccess = errors.New("no access to this department")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidToken       = errors.New("invalid session token")
)

var (
	ErrClearanceIncomplete = errors.New("not all departments have been cleared")
	ErrUnknownStatus       = errors.New("unknown clearance status")
	ErrUnknownDepartment   = errors.New("unknown department")
)

var (
	ErrEmailInvalidLen    = errors.New("email length exceeds 255 characters")
	ErrEmailInvalidFormat = errors.New("incorrect email format")
	ErrPasswordEmpty      = errors.New("password must not be empty")
)
