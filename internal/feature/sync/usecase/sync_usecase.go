// Package usecase implements the identity consistency core: it guarantees
// that every credential of a profile-bearing role can be given exactly one
// profile document in the matching store, on demand and safely under races.
package usecase

import (
	"context"
	"errors"
	"fmt"

	authdomain "campuschain_backend/internal/feature/auth/domain"
	authentity "campuschain_backend/internal/feature/auth/domain/entity"
	profiledomain "campuschain_backend/internal/feature/profile/domain"
	profileentity "campuschain_backend/internal/feature/profile/domain/entity"
)

// SyncCode identifies the terminal state of a sync operation. Values are
// wire-compatible with the consistency service's original result codes.
type SyncCode string

const (
	// CodeUserNotFound: no credential exists for (email, role). Terminal;
	// a profile must never be created for a missing or wrong-role account.
	CodeUserNotFound SyncCode = "USER_NOT_FOUND"

	// CodeProfileExists: a profile already exists. A normal outcome, not an error.
	CodeProfileExists SyncCode = "PROFILE_EXISTS"

	// CodeProfileCreated: a default profile was created for the credential.
	CodeProfileCreated SyncCode = "PROFILE_CREATED"

	// CodeSyncError: an unexpected persistence failure. Not retried
	// automatically; the caller must re-invoke.
	CodeSyncError SyncCode = "SYNC_ERROR"
)

// SyncResult is the outcome of a SyncProfile call.
type SyncResult struct {
	Success bool
	Message string
	Code    SyncCode
	Profile *profileentity.Profile
	Err     error
}

// ConsistencyReport describes whether an email has matching records across
// the login store and the student profile store.
type ConsistencyReport struct {
	Email      string   `json:"email"`
	LoginDB    bool     `json:"loginDB"`
	StudentDB  bool     `json:"studentDB"`
	Consistent bool     `json:"consistent"`
	Issues     []string `json:"issues"`
}

// CredentialFinder is the slice of the credential store the sync core needs.
type CredentialFinder interface {
	FindByEmail(ctx context.Context, email string) (*authentity.Credential, error)
	FindByEmailAndRole(ctx context.Context, email string, role authentity.Role) (*authentity.Credential, error)
}

// ProfileRepository is the slice of a role's profile store the sync core needs.
type ProfileRepository interface {
	FindByEmail(ctx context.Context, email string) (*profileentity.Profile, error)
	Create(ctx context.Context, p *profileentity.Profile) error
}

// SyncUsecase reconciles the credential store with the per-role profile stores.
type SyncUsecase struct {
	creds    CredentialFinder
	profiles map[authentity.Role]ProfileRepository
}

// NewSyncUsecase wires the consistency service with the credential store and
// one profile store per profile-bearing role.
func NewSyncUsecase(creds CredentialFinder, profiles map[authentity.Role]ProfileRepository) *SyncUsecase {
	return &SyncUsecase{creds: creds, profiles: profiles}
}

// SyncProfile ensures a profile exists for the credential identified by
// (email, role), creating a default one when missing.
//
// Two concurrent calls may both pass the not-found check and race on the
// insert; the store's unique index decides the winner and the loser re-reads
// the now-existing document and reports PROFILE_EXISTS. No locking, no retry
// loop: creation is naturally idempotent once keyed uniquely by email.
func (u *SyncUsecase) SyncProfile(ctx context.Context, email string, role authentity.Role) SyncResult {
	store, ok := u.profiles[role]
	if !ok {
		return SyncResult{
			Success: false,
			Message: fmt.Sprintf("No profile store for role %s", role),
			Code:    CodeUserNotFound,
		}
	}

	cred, err := u.creds.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, authdomain.ErrCredentialNotFound) {
			return SyncResult{
				Success: false,
				Message: fmt.Sprintf("User not found in loginDB with email %s and role %s", email, role),
				Code:    CodeUserNotFound,
			}
		}
		return syncError(err)
	}

	existing, err := store.FindByEmail(ctx, email)
	if err == nil {
		return SyncResult{
			Success: true,
			Message: fmt.Sprintf("Profile already exists for %s", email),
			Code:    CodeProfileExists,
			Profile: existing,
		}
	}
	if !errors.Is(err, profiledomain.ErrProfileNotFound) {
		return syncError(err)
	}

	profile := profileentity.NewDefault(cred.Name, cred.Email, role)
	if err := store.Create(ctx, profile); err != nil {
		if errors.Is(err, profiledomain.ErrProfileAlreadyExists) {
			// Lost the creation race; the other writer's document wins.
			winner, ferr := store.FindByEmail(ctx, email)
			if ferr != nil {
				return syncError(ferr)
			}
			return SyncResult{
				Success: true,
				Message: fmt.Sprintf("Profile already exists for %s", email),
				Code:    CodeProfileExists,
				Profile: winner,
			}
		}
		return syncError(err)
	}

	return SyncResult{
		Success: true,
		Message: fmt.Sprintf("Profile created successfully for %s", email),
		Code:    CodeProfileCreated,
		Profile: profile,
	}
}

func syncError(err error) SyncResult {
	return SyncResult{
		Success: false,
		Message: "Error syncing profile",
		Code:    CodeSyncError,
		Err:     err,
	}
}

// GetOrCreateProfile returns the profile for (email, role), creating it via
// SyncProfile when absent. The direct lookup keeps the hot path off the
// credential store; the end state is identical to calling SyncProfile alone.
func (u *SyncUsecase) GetOrCreateProfile(ctx context.Context, email string, role authentity.Role) (*profileentity.Profile, bool, error) {
	store, ok := u.profiles[role]
	if !ok {
		return nil, false, authdomain.ErrCredentialNotFound
	}

	if profile, err := store.FindByEmail(ctx, email); err == nil {
		return profile, false, nil
	} else if !errors.Is(err, profiledomain.ErrProfileNotFound) {
		return nil, false, err
	}

	result := u.SyncProfile(ctx, email, role)
	if !result.Success {
		if result.Code == CodeUserNotFound {
			return nil, false, authdomain.ErrCredentialNotFound
		}
		if result.Err != nil {
			return nil, false, result.Err
		}
		return nil, false, errors.New(result.Message)
	}
	return result.Profile, result.Code == CodeProfileCreated, nil
}

// ValidateConsistency reports whether email exists in the login store (any
// role) and in the student profile store. Read-only; repairs nothing.
//
// The check is deliberately role-blind and fixed to the student store, as in
// the system this replaces: an alumni account with no student profile is
// reported inconsistent. Callers must interpret accordingly.
func (u *SyncUsecase) ValidateConsistency(ctx context.Context, email string) ConsistencyReport {
	report := ConsistencyReport{Email: email, Issues: []string{}}

	if _, err := u.creds.FindByEmail(ctx, email); err == nil {
		report.LoginDB = true
	} else if !errors.Is(err, authdomain.ErrCredentialNotFound) {
		report.Issues = append(report.Issues, "Validation error: "+err.Error())
		return report
	}

	students := u.profiles[authentity.RoleStudent]
	if _, err := students.FindByEmail(ctx, email); err == nil {
		report.StudentDB = true
	} else if !errors.Is(err, profiledomain.ErrProfileNotFound) {
		report.Issues = append(report.Issues, "Validation error: "+err.Error())
		return report
	}

	if !report.LoginDB {
		report.Issues = append(report.Issues, "User not found in loginDB")
	}
	if !report.StudentDB {
		report.Issues = append(report.Issues, "Profile not found in studentDB")
	}
	report.Consistent = report.LoginDB && report.StudentDB

	return report
}
