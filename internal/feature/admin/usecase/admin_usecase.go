// Package usecase implements the business logic behind the admin surface.
package usecase

import (
	"context"

	profileentity "campuschain_backend/internal/feature/profile/domain/entity"
)

// ProfileLister is the slice of a profile store the admin surface needs:
// counting and listing every document.
type ProfileLister interface {
	CountAll(ctx context.Context) (int64, error)
	ListAll(ctx context.Context) ([]profileentity.Profile, error)
}

// Overview summarizes the size of each profile store for the dashboard.
type Overview struct {
	StudentCount int64 `json:"studentCount"`
	AlumniCount  int64 `json:"alumniCount"`
}

// AdminUsecase aggregates data across both profile stores for admin views.
type AdminUsecase struct {
	students ProfileLister
	alumni   ProfileLister
}

// NewAdminUsecase wires the admin usecase with both profile stores.
func NewAdminUsecase(students, alumni ProfileLister) *AdminUsecase {
	return &AdminUsecase{students: students, alumni: alumni}
}

// GetOverview returns per-store profile counts.
func (u *AdminUsecase) GetOverview(ctx context.Context) (*Overview, error) {
	studentCount, err := u.students.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	alumniCount, err := u.alumni.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	return &Overview{StudentCount: studentCount, AlumniCount: alumniCount}, nil
}

// AllUsers returns every student and alumni profile for the admin users page.
func (u *AdminUsecase) AllUsers(ctx context.Context) ([]profileentity.Profile, []profileentity.Profile, error) {
	students, err := u.students.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	alumni, err := u.alumni.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	return students, alumni, nil
}
