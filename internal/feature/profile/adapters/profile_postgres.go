// Package adapters provides the repository implementations for the profile feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"campuschain_backend/internal/feature/profile/domain"
	"campuschain_backend/internal/feature/profile/domain/entity"
	"campuschain_backend/internal/feature/profile/usecase"
)

const pgUniqueViolation = "23505"

// profilePostgres implements ProfileRepository over one role-specific
// database. The student and alumni stores each get their own instance on
// their own connection.
type profilePostgres struct {
	db *gorm.DB
}

// Compile-time check that profilePostgres implements usecase.ProfileRepository.
var _ usecase.ProfileRepository = (*profilePostgres)(nil)

// NewProfilePostgres creates a profile repository on the given connection.
func NewProfilePostgres(db *gorm.DB) *profilePostgres {
	return &profilePostgres{db: db}
}

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Create inserts a profile document.
// Returns domain.ErrProfileAlreadyExists on an email collision; the unique
// index is the arbiter for concurrent creates.
func (r *profilePostgres) Create(ctx context.Context, p *entity.Profile) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if isDuplicateKey(err) {
			return domain.ErrProfileAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves the profile keyed by email.
func (r *profilePostgres) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Save persists the full state of an existing profile.
func (r *profilePostgres) Save(ctx context.Context, p *entity.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// CountAll returns the number of profiles in this store.
func (r *profilePostgres) CountAll(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Profile{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// ListAll returns every profile in this store.
func (r *profilePostgres) ListAll(ctx context.Context) ([]entity.Profile, error) {
	var profiles []entity.Profile
	if err := r.db.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
