// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrEmailAlreadyExists indicates that a credential with the given email already exists.
	// This is returned during registration when attempting to create a duplicate account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrCredentialNotFound indicates that no credential was found with the given criteria.
	// This is returned by lookups keyed on email, or on (email, role).
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrInvalidCredentials indicates that the provided credentials are incorrect.
	// It deliberately does not reveal which of email, password or role was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
