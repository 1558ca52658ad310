package domain

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrUserNotFound       = errors.New("user not found")
)

// Document errors. ErrDocumentNotFound covers absent, foreign-owned and
// soft-deleted documents alike so callers cannot probe for existence.
var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrDocumentExists   = errors.New("document already exists")
)
