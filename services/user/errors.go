package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidUser  = errors.New("user email is required")
	ErrInvalidID    = errors.New("invalid user id")
)
