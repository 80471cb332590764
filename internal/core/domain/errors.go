package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrSessionNotFound = errors.New("chat session not found")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 72 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")

	ErrInvalidUserPayload    = errors.New("invalid user payload")
	ErrInvalidProjectPayload = errors.New("invalid project payload")
	ErrInvalidTaskPayload    = errors.New("invalid task payload")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrEmptyMessage          = errors.New("empty chat message")

	// ErrAdminImmutable guards the last-admin invariant: the admin record can
	// never be removed, so exactly one admin survives any mutation sequence.
	ErrAdminImmutable = errors.New("admin user cannot be removed")
)
