package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuschain_backend/internal/feature/auth/domain"
	"campuschain_backend/internal/feature/auth/domain/entity"
	profiledomain "campuschain_backend/internal/feature/profile/domain"
)

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	RegisterFunc   func(ctx context.Context, name, email, password string, role entity.Role) error
	LoginFunc      func(ctx context.Context, email, password string, role entity.Role) (string, *entity.PublicUser, error)
	AdminLoginFunc func(ctx context.Context, email, password string) (string, *entity.PublicUser, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, name, email, password string, role entity.Role) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password, role)
	}
	return nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string, role entity.Role) (string, *entity.PublicUser, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, role)
	}
	return "", nil, domain.ErrInvalidCredentials
}

func (m *mockAuthUsecase) AdminLogin(ctx context.Context, email, password string) (string, *entity.PublicUser, error) {
	if m.AdminLoginFunc != nil {
		return m.AdminLoginFunc(ctx, email, password)
	}
	return "", nil, domain.ErrInvalidCredentials
}

func performJSON(t *testing.T, h gin.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Handle(method, path, h)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		registerFn func(ctx context.Context, name, email, password string, role entity.Role) error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "successful registration",
			body:       `{"name":"Bob","email":"bob@x.com","password":"pw12345678","role":"student"}`,
			wantStatus: http.StatusCreated,
			wantBody:   `{"message":"User registered successfully"}`,
		},
		{
			name:       "missing fields",
			body:       `{"email":"bob@x.com"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"All fields are required"}`,
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"All fields are required"}`,
		},
		{
			name:       "unknown role",
			body:       `{"name":"Bob","email":"bob@x.com","password":"pw12345678","role":"professor"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Invalid role"}`,
		},
		{
			name: "duplicate email",
			body: `{"name":"Bob","email":"bob@x.com","password":"pw12345678","role":"student"}`,
			registerFn: func(ctx context.Context, name, email, password string, role entity.Role) error {
				return domain.ErrEmailAlreadyExists
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"message":"Email already exists"}`,
		},
		{
			name: "starter profile conflict",
			body: `{"name":"Bob","email":"bob@x.com","password":"pw12345678","role":"student"}`,
			registerFn: func(ctx context.Context, name, email, password string, role entity.Role) error {
				return profiledomain.ErrProfileAlreadyExists
			},
			wantStatus: http.StatusConflict,
			wantBody:   `{"message":"A profile with this email already exists in the role-specific database."}`,
		},
		{
			name: "unexpected failure",
			body: `{"name":"Bob","email":"bob@x.com","password":"pw12345678","role":"student"}`,
			registerFn: func(ctx context.Context, name, email, password string, role entity.Role) error {
				return context.DeadlineExceeded
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"Server error during registration"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{RegisterFunc: tt.registerFn})

			w := performJSON(t, h.Register, http.MethodPost, "/api/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}

	t.Run("role string is normalized before the usecase sees it", func(t *testing.T) {
		var gotRole entity.Role
		h := NewAuthHandler(&mockAuthUsecase{
			RegisterFunc: func(ctx context.Context, name, email, password string, role entity.Role) error {
				gotRole = role
				return nil
			},
		})

		w := performJSON(t, h.Register, http.MethodPost, "/api/auth/register",
			`{"name":"Ann","email":"ann@x.com","password":"pw12345678","role":"Alumni"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, entity.RoleAlumni, gotRole)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	okLogin := func(ctx context.Context, email, password string, role entity.Role) (string, *entity.PublicUser, error) {
		return "signed-token", &entity.PublicUser{Name: "Bob", Email: email, Role: role}, nil
	}

	tests := []struct {
		name       string
		body       string
		loginFn    func(ctx context.Context, email, password string, role entity.Role) (string, *entity.PublicUser, error)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "successful login",
			body:       `{"email":"bob@x.com","password":"pw12345678","role":"student"}`,
			loginFn:    okLogin,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Login successful","token":"signed-token","user":{"name":"Bob","email":"bob@x.com","role":"student"}}`,
		},
		{
			name:       "missing password",
			body:       `{"email":"bob@x.com","role":"student"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"message":"Email, password, and role are required"}`,
		},
		{
			name:       "unknown role is indistinguishable from bad credentials",
			body:       `{"email":"bob@x.com","password":"pw12345678","role":"professor"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Invalid credentials"}`,
		},
		{
			name:       "rejected credentials",
			body:       `{"email":"bob@x.com","password":"wrong","role":"student"}`,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"Invalid credentials"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.loginFn})

			w := performJSON(t, h.Login, http.MethodPost, "/api/auth/login", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestAuthHandler_AdminLogin(t *testing.T) {
	t.Run("successful admin login", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{
			AdminLoginFunc: func(ctx context.Context, email, password string) (string, *entity.PublicUser, error) {
				return "admin-token", &entity.PublicUser{Name: "Root", Email: email, Role: entity.RoleAdmin}, nil
			},
		})

		w := performJSON(t, h.AdminLogin, http.MethodPost, "/api/admin/login",
			`{"email":"root@x.com","password":"adminpw123"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Admin login successful","token":"admin-token","user":{"name":"Root","email":"root@x.com","role":"admin"}}`, w.Body.String())
	})

	t.Run("non-admin account is rejected", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := performJSON(t, h.AdminLogin, http.MethodPost, "/api/admin/login",
			`{"email":"bob@x.com","password":"pw12345678"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"Invalid credentials or not an admin"}`, w.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		h := NewAuthHandler(&mockAuthUsecase{})

		w := performJSON(t, h.AdminLogin, http.MethodPost, "/api/admin/login", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"Email and password are required"}`, w.Body.String())
	})
}
