package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"campuschain_backend/internal/feature/auth/domain"
	"campuschain_backend/internal/feature/auth/domain/entity"
	profiledomain "campuschain_backend/internal/feature/profile/domain"
	profileentity "campuschain_backend/internal/feature/profile/domain/entity"
)

// mockCredentialRepository is a mock implementation of the CredentialRepository interface.
type mockCredentialRepository struct {
	CreateFunc             func(ctx context.Context, c *entity.Credential) error
	FindByEmailFunc        func(ctx context.Context, email string) (*entity.Credential, error)
	FindByEmailAndRoleFunc func(ctx context.Context, email string, role entity.Role) (*entity.Credential, error)
}

func (m *mockCredentialRepository) Create(ctx context.Context, c *entity.Credential) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCredentialRepository) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrCredentialNotFound
}

func (m *mockCredentialRepository) FindByEmailAndRole(ctx context.Context, email string, role entity.Role) (*entity.Credential, error) {
	if m.FindByEmailAndRoleFunc != nil {
		return m.FindByEmailAndRoleFunc(ctx, email, role)
	}
	return nil, domain.ErrCredentialNotFound
}

// mockProfileCreator is a mock implementation of the ProfileCreator interface.
type mockProfileCreator struct {
	CreateFunc func(ctx context.Context, p *profileentity.Profile) error
	created    []*profileentity.Profile
}

func (m *mockProfileCreator) Create(ctx context.Context, p *profileentity.Profile) error {
	m.created = append(m.created, p)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

// mockTokenGenerator is a mock implementation of the TokenGenerator interface.
type mockTokenGenerator struct {
	GenerateTokenFunc func(accountID, email string, role entity.Role) (string, error)
}

func (m *mockTokenGenerator) GenerateToken(accountID, email string, role entity.Role) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(accountID, email, role)
	}
	return "mock-jwt-token", nil
}

func profileStores(students, alumni *mockProfileCreator) map[entity.Role]ProfileCreator {
	return map[entity.Role]ProfileCreator{
		entity.RoleStudent: students,
		entity.RoleAlumni:  alumni,
	}
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates credential and starter profile", func(t *testing.T) {
		var saved *entity.Credential
		creds := &mockCredentialRepository{
			CreateFunc: func(ctx context.Context, c *entity.Credential) error {
				saved = c
				return nil
			},
		}
		students := &mockProfileCreator{}
		alumni := &mockProfileCreator{}
		uc := NewAuthUsecase(creds, profileStores(students, alumni), &mockTokenGenerator{})

		err := uc.Register(ctx, "Bob", "bob@x.com", "pw12345678", entity.RoleStudent)
		require.NoError(t, err)

		require.NotNil(t, saved)
		assert.NotEmpty(t, saved.ID, "account ID should be assigned")
		assert.NotEqual(t, "pw12345678", saved.Password, "password must be hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("pw12345678")))

		require.Len(t, students.created, 1)
		assert.Empty(t, alumni.created)
		starter := students.created[0]
		assert.Equal(t, "bob@x.com", starter.Email)
		assert.Equal(t, "Student", starter.Headline)
		for section, visible := range starter.Privacy {
			assert.True(t, visible, "starter section %s should be public", section)
		}
	})

	t.Run("alumni registration targets the alumni store", func(t *testing.T) {
		students := &mockProfileCreator{}
		alumni := &mockProfileCreator{}
		uc := NewAuthUsecase(&mockCredentialRepository{}, profileStores(students, alumni), &mockTokenGenerator{})

		err := uc.Register(ctx, "Ann", "ann@x.com", "pw12345678", entity.RoleAlumni)
		require.NoError(t, err)

		assert.Empty(t, students.created)
		require.Len(t, alumni.created, 1)
		assert.Equal(t, "Alumni", alumni.created[0].Headline)
	})

	t.Run("admin registration creates no profile", func(t *testing.T) {
		students := &mockProfileCreator{}
		alumni := &mockProfileCreator{}
		uc := NewAuthUsecase(&mockCredentialRepository{}, profileStores(students, alumni), &mockTokenGenerator{})

		err := uc.Register(ctx, "Root", "root@x.com", "pw12345678", entity.RoleAdmin)

		require.NoError(t, err)
		assert.Empty(t, students.created)
		assert.Empty(t, alumni.created)
	})

	t.Run("existing email is rejected before insert", func(t *testing.T) {
		creds := &mockCredentialRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.Credential, error) {
				return &entity.Credential{Email: email}, nil
			},
		}
		uc := NewAuthUsecase(creds, profileStores(&mockProfileCreator{}, &mockProfileCreator{}), &mockTokenGenerator{})

		err := uc.Register(ctx, "Bob", "bob@x.com", "pw12345678", entity.RoleStudent)

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("racing duplicate at insert time reports the same conflict", func(t *testing.T) {
		creds := &mockCredentialRepository{
			CreateFunc: func(ctx context.Context, c *entity.Credential) error {
				return domain.ErrEmailAlreadyExists
			},
		}
		uc := NewAuthUsecase(creds, profileStores(&mockProfileCreator{}, &mockProfileCreator{}), &mockTokenGenerator{})

		err := uc.Register(ctx, "Bob", "bob@x.com", "pw12345678", entity.RoleStudent)

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("starter profile conflict keeps credential committed", func(t *testing.T) {
		credentialCreated := false
		creds := &mockCredentialRepository{
			CreateFunc: func(ctx context.Context, c *entity.Credential) error {
				credentialCreated = true
				return nil
			},
		}
		students := &mockProfileCreator{
			CreateFunc: func(ctx context.Context, p *profileentity.Profile) error {
				return profiledomain.ErrProfileAlreadyExists
			},
		}
		uc := NewAuthUsecase(creds, profileStores(students, &mockProfileCreator{}), &mockTokenGenerator{})

		err := uc.Register(ctx, "Alice", "alice@example.com", "pw12345678", entity.RoleStudent)

		assert.ErrorIs(t, err, profiledomain.ErrProfileAlreadyExists)
		assert.True(t, credentialCreated, "credential must not be rolled back")
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	password := "pw12345678"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	stored := &entity.Credential{
		ID:       "acc-1",
		Name:     "Bob",
		Email:    "bob@x.com",
		Password: string(hashed),
		Role:     entity.RoleStudent,
	}
	credsWith := func(c *entity.Credential) *mockCredentialRepository {
		return &mockCredentialRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.Credential, error) {
				if c != nil && email == c.Email {
					return c, nil
				}
				return nil, domain.ErrCredentialNotFound
			},
		}
	}

	t.Run("successful login returns token and public user", func(t *testing.T) {
		tokens := &mockTokenGenerator{
			GenerateTokenFunc: func(accountID, email string, role entity.Role) (string, error) {
				assert.Equal(t, "acc-1", accountID)
				assert.Equal(t, entity.RoleStudent, role)
				return "signed-token", nil
			},
		}
		uc := NewAuthUsecase(credsWith(stored), nil, tokens)

		token, user, err := uc.Login(ctx, "bob@x.com", password, entity.RoleStudent)

		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, &entity.PublicUser{Name: "Bob", Email: "bob@x.com", Role: entity.RoleStudent}, user)
	})

	t.Run("role comparison is case-insensitive", func(t *testing.T) {
		uc := NewAuthUsecase(credsWith(stored), nil, &mockTokenGenerator{})

		_, _, err := uc.Login(ctx, "bob@x.com", password, entity.Role("Student"))

		assert.NoError(t, err)
	})

	t.Run("wrong password fails with the generic error", func(t *testing.T) {
		uc := NewAuthUsecase(credsWith(stored), nil, &mockTokenGenerator{})

		_, _, err := uc.Login(ctx, "bob@x.com", "wrongpw", entity.RoleStudent)

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("role mismatch fails with the generic error", func(t *testing.T) {
		uc := NewAuthUsecase(credsWith(stored), nil, &mockTokenGenerator{})

		_, _, err := uc.Login(ctx, "bob@x.com", password, entity.RoleAlumni)

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email fails with the generic error", func(t *testing.T) {
		uc := NewAuthUsecase(credsWith(nil), nil, &mockTokenGenerator{})

		_, _, err := uc.Login(ctx, "nobody@x.com", password, entity.RoleStudent)

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthUsecase_AdminLogin(t *testing.T) {
	ctx := context.Background()
	password := "adminpw123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	t.Run("stored admin credential succeeds", func(t *testing.T) {
		creds := &mockCredentialRepository{
			FindByEmailAndRoleFunc: func(ctx context.Context, email string, role entity.Role) (*entity.Credential, error) {
				require.Equal(t, entity.RoleAdmin, role)
				return &entity.Credential{ID: "acc-9", Name: "Root", Email: email, Password: string(hashed), Role: entity.RoleAdmin}, nil
			},
		}
		uc := NewAuthUsecase(creds, nil, &mockTokenGenerator{})

		token, user, err := uc.AdminLogin(ctx, "root@x.com", password)

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, entity.RoleAdmin, user.Role)
	})

	t.Run("non-admin account cannot use the admin gate", func(t *testing.T) {
		uc := NewAuthUsecase(&mockCredentialRepository{}, nil, &mockTokenGenerator{})

		_, _, err := uc.AdminLogin(ctx, "bob@x.com", password)

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
