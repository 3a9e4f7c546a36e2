package auth

import "errors"

var (
	ErrAllFieldsRequired  = errors.New("all fields required")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordTooShort   = errors.New("new password must be at least 6 characters")
)
