package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPasswordMismatch   = errors.New("passwords must match")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidReference   = errors.New("invalid reference")
	ErrNotFound           = errors.New("not found")
)
