// Package usecase implements the business logic for role-scoped profile CRUD.
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	authdomain "campuschain_backend/internal/feature/auth/domain"
	authentity "campuschain_backend/internal/feature/auth/domain/entity"
	"campuschain_backend/internal/feature/profile/domain"
	"campuschain_backend/internal/feature/profile/domain/entity"
)

// ProfileRepository abstracts the persistence layer for one role's profile store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProfileRepository interface {
	// Create persists a new profile. Returns domain.ErrProfileAlreadyExists
	// on an email collision.
	Create(ctx context.Context, p *entity.Profile) error

	// FindByEmail retrieves the profile keyed by email, or domain.ErrProfileNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Save persists the full current state of an existing profile.
	Save(ctx context.Context, p *entity.Profile) error

	// CountAll returns the number of profiles in the store.
	CountAll(ctx context.Context) (int64, error)

	// ListAll returns every profile in the store.
	ListAll(ctx context.Context) ([]entity.Profile, error)
}

// CredentialChecker is the slice of the credential store the profile API
// needs: confirming that a role-matched account exists for an email.
type CredentialChecker interface {
	FindByEmailAndRole(ctx context.Context, email string, role authentity.Role) (*authentity.Credential, error)
}

// ProfileUsecase provides profile CRUD for a single role store. When a
// credential checker is configured, every operation first re-validates that a
// matching, role-correct credential exists; a miss is reported as
// credential-not-found so other-role registrations are never leaked.
type ProfileUsecase struct {
	repo  ProfileRepository
	creds CredentialChecker
	role  authentity.Role
}

// NewProfileUsecase creates a ProfileUsecase for one role store.
// creds may be nil to skip credential cross-checks (the alumni routes of the
// original system ran unchecked; see DESIGN.md).
func NewProfileUsecase(repo ProfileRepository, creds CredentialChecker, role authentity.Role) *ProfileUsecase {
	return &ProfileUsecase{repo: repo, creds: creds, role: role}
}

// checkCredential verifies a role-matched credential exists for email.
func (u *ProfileUsecase) checkCredential(ctx context.Context, email string) error {
	if u.creds == nil {
		return nil
	}
	if _, err := u.creds.FindByEmailAndRole(ctx, email, u.role); err != nil {
		if errors.Is(err, authdomain.ErrCredentialNotFound) {
			return authdomain.ErrCredentialNotFound
		}
		return fmt.Errorf("credential check failed: %w", err)
	}
	return nil
}

// Create inserts a new profile after verifying the credential and the
// absence of an existing document for the email.
func (u *ProfileUsecase) Create(ctx context.Context, p *entity.Profile) (*entity.Profile, error) {
	if err := u.checkCredential(ctx, p.Email); err != nil {
		return nil, err
	}
	if _, err := u.repo.FindByEmail(ctx, p.Email); err == nil {
		return nil, domain.ErrProfileAlreadyExists
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	if p.Role == "" {
		p.Role = u.role
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetByEmail retrieves the profile for email. A missing credential and a
// missing profile are both surfaced to the caller as not-found conditions.
func (u *ProfileUsecase) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	if err := u.checkCredential(ctx, email); err != nil {
		return nil, err
	}
	return u.repo.FindByEmail(ctx, email)
}

// strippedPatchKeys are identity and bookkeeping fields an update may never
// change; the lookup key stays immutable from the caller's perspective.
var strippedPatchKeys = []string{"_id", "id", "email", "createdAt", "updatedAt"}

// UpdateByEmail applies a partial-field merge to the stored profile: fields
// present in the patch replace stored values, absent fields are untouched.
func (u *ProfileUsecase) UpdateByEmail(ctx context.Context, email string, patch map[string]any) (*entity.Profile, error) {
	if err := u.checkCredential(ctx, email); err != nil {
		return nil, err
	}

	existing, err := u.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	for _, k := range strippedPatchKeys {
		delete(patch, k)
	}

	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, domain.ErrInvalidPatch
	}
	if err := json.Unmarshal(raw, existing); err != nil {
		return nil, domain.ErrInvalidPatch
	}
	existing.Email = email

	if err := u.repo.Save(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}
