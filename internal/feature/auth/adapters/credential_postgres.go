// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"campuschain_backend/internal/feature/auth/domain"
	"campuschain_backend/internal/feature/auth/domain/entity"
	"campuschain_backend/internal/feature/auth/usecase"
)

// pgUniqueViolation is the Postgres error code for a unique-constraint breach.
const pgUniqueViolation = "23505"

// credentialPostgres is the Postgres implementation of the CredentialRepository
// interface, backed by the login database through GORM.
type credentialPostgres struct {
	db *gorm.DB
}

// Compile-time check that credentialPostgres implements usecase.CredentialRepository.
var _ usecase.CredentialRepository = (*credentialPostgres)(nil)

// NewCredentialPostgres creates a credential repository on the given connection.
func NewCredentialPostgres(db *gorm.DB) *credentialPostgres {
	return &credentialPostgres{db: db}
}

// isDuplicateKey reports whether err is a unique-key violation, either as the
// raw driver error or as GORM's translated sentinel.
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Create adds a credential to the login database.
// Returns domain.ErrEmailAlreadyExists when the email is already taken.
func (r *credentialPostgres) Create(ctx context.Context, c *entity.Credential) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a credential by email regardless of role.
// Returns domain.ErrCredentialNotFound when no account matches.
func (r *credentialPostgres) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var c entity.Credential
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByEmailAndRole retrieves a credential matching both email and role.
// Returns domain.ErrCredentialNotFound when no account matches the pair.
func (r *credentialPostgres) FindByEmailAndRole(ctx context.Context, email string, role entity.Role) (*entity.Credential, error) {
	var c entity.Credential
	if err := r.db.WithContext(ctx).Where("email = ? AND role = ?", email, role).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCredentialNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindAllByRole lists every credential with the given role.
// Used by the backfill tool to repair missing profiles in bulk.
func (r *credentialPostgres) FindAllByRole(ctx context.Context, role entity.Role) ([]entity.Credential, error) {
	var creds []entity.Credential
	if err := r.db.WithContext(ctx).Where("role = ?", role).Find(&creds).Error; err != nil {
		return nil, err
	}
	return creds, nil
}
