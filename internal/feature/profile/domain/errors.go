// Package domain defines domain-level errors for the profile feature.
package domain

import "errors"

var (
	// ErrProfileNotFound indicates that no profile document exists for the given email.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileAlreadyExists indicates a unique-key collision on the profile email.
	// On the sync race path this is a normal terminal state, not a failure.
	ErrProfileAlreadyExists = errors.New("profile with this email already exists")

	// ErrInvalidPatch indicates that an update payload could not be applied to the
	// stored document.
	ErrInvalidPatch = errors.New("invalid profile update payload")
)
