package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUserID indicates that the provided user ID is not a well-formed identifier.
	ErrInvalidUserID = errors.New("invalid user ID")
	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = errors.New("email address already exists")
	// ErrInvalidCredentials indicates a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountDisabled indicates the account has been deactivated by an administrator.
	ErrAccountDisabled = errors.New("user account has been deactivated")
	// ErrMissingFields indicates that required registration fields are absent.
	ErrMissingFields = errors.New("name, email, and role are required")
)
