// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"campuschain_backend/internal/feature/auth/domain"
	"campuschain_backend/internal/feature/auth/domain/entity"
	profiledomain "campuschain_backend/internal/feature/profile/domain"
	profileentity "campuschain_backend/internal/feature/profile/domain/entity"
)

// CredentialRepository abstracts the persistence layer for credentials.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CredentialRepository interface {
	// Create persists a new credential. Returns domain.ErrEmailAlreadyExists
	// when a credential with the same email is already present.
	Create(ctx context.Context, c *entity.Credential) error

	// FindByEmail retrieves a credential by email, any role.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// FindByEmailAndRole retrieves a credential matching both email and role.
	FindByEmailAndRole(ctx context.Context, email string, role entity.Role) (*entity.Credential, error)
}

// ProfileCreator is the slice of the profile store registration needs:
// inserting the starter profile for a fresh credential.
type ProfileCreator interface {
	Create(ctx context.Context, p *profileentity.Profile) error
}

// TokenGenerator issues the signed bearer token returned on login.
type TokenGenerator interface {
	GenerateToken(accountID, email string, role entity.Role) (string, error)
}

// AuthUsecase implements registration and login against the login database,
// creating the role-matched starter profile as a registration side effect.
type AuthUsecase struct {
	creds    CredentialRepository
	profiles map[entity.Role]ProfileCreator
	tokens   TokenGenerator
}

// NewAuthUsecase wires the usecase with its stores and token generator.
// profiles maps each profile-bearing role to its store; admin has none.
func NewAuthUsecase(creds CredentialRepository, profiles map[entity.Role]ProfileCreator, tokens TokenGenerator) *AuthUsecase {
	return &AuthUsecase{creds: creds, profiles: profiles, tokens: tokens}
}

// dummyHash keeps bcrypt comparison on the login path even when no
// credential matches, so response timing does not leak account existence.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Register creates a credential and its starter profile.
//
// The two writes span separate stores and are not transactional: if the
// starter profile collides on email, profiledomain.ErrProfileAlreadyExists is
// returned while the credential stays committed. The sync endpoint is the
// repair path for that state.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string, role entity.Role) error {
	if _, err := u.creds.FindByEmail(ctx, email); err == nil {
		return domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrCredentialNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	cred := &entity.Credential{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := u.creds.Create(ctx, cred); err != nil {
		// A racing registration may beat the pre-check; duplicate-key at
		// insert time is reported the same way.
		return err
	}

	store, ok := u.profiles[role]
	if !ok {
		// Admin accounts have no profile store.
		return nil
	}
	if err := store.Create(ctx, profileentity.NewDefault(name, email, role)); err != nil {
		if errors.Is(err, profiledomain.ErrProfileAlreadyExists) {
			return profiledomain.ErrProfileAlreadyExists
		}
		return fmt.Errorf("starter profile creation failed: %w", err)
	}
	return nil
}

// Login authenticates a credential and issues a signed token.
// Unknown email, role mismatch and wrong password all collapse into
// domain.ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, email, password string, role entity.Role) (string, *entity.PublicUser, error) {
	cred, err := u.creds.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = cred.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil || !cred.Role.Equals(role) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(cred.ID, cred.Email, cred.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	pub := cred.Public()
	return token, &pub, nil
}

// AdminLogin authenticates against role=admin credentials only. It gates the
// admin endpoint; it never elevates a non-admin account.
func (u *AuthUsecase) AdminLogin(ctx context.Context, email, password string) (string, *entity.PublicUser, error) {
	cred, err := u.creds.FindByEmailAndRole(ctx, email, entity.RoleAdmin)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = cred.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(cred.ID, cred.Email, cred.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	pub := cred.Public()
	return token, &pub, nil
}
