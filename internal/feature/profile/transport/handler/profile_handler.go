// Package handler provides the HTTP handlers for role-scoped profile CRUD.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "campuschain_backend/internal/feature/auth/domain"
	authentity "campuschain_backend/internal/feature/auth/domain/entity"
	"campuschain_backend/internal/feature/profile/domain"
	"campuschain_backend/internal/feature/profile/domain/entity"
)

// ProfileUsecase defines the profile operations the handler depends on.
type ProfileUsecase interface {
	Create(ctx context.Context, p *entity.Profile) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	UpdateByEmail(ctx context.Context, email string, patch map[string]any) (*entity.Profile, error)
}

// ProfileHandler serves one role's profile routes. The same handler type is
// mounted once per role group with that role's usecase instance.
type ProfileHandler struct {
	profiles ProfileUsecase
	role     authentity.Role
}

// NewProfileHandler creates a ProfileHandler for the given role store.
func NewProfileHandler(profiles ProfileUsecase, role authentity.Role) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, role: role}
}

// credentialMissingMsg matches the original wire message: an email registered
// under a different role gets the same 404 as an unknown email.
func (h *ProfileHandler) credentialMissingMsg() string {
	return fmt.Sprintf("User not found in login database or not a %s", h.role)
}

// Create handles POST /api/{role}/create.
func (h *ProfileHandler) Create(c *gin.Context) {
	var p entity.Profile
	if err := c.ShouldBindJSON(&p); err != nil || p.Email == "" {
		slog.Warn("profile create validation failed", "role", h.role, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	created, err := h.profiles.Create(c.Request.Context(), &p)
	switch {
	case err == nil:
		slog.Info("profile created", "email", created.Email, "role", h.role)
		c.JSON(http.StatusCreated, created)
	case errors.Is(err, authdomain.ErrCredentialNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": h.credentialMissingMsg()})
	case errors.Is(err, domain.ErrProfileAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"message": "Profile with this email already exists"})
	default:
		slog.Error("profile create failed", "error", err, "email", p.Email, "role", h.role)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during create"})
	}
}

// Get handles GET /api/{role}/get/:email.
func (h *ProfileHandler) Get(c *gin.Context) {
	email := c.Param("email")

	profile, err := h.profiles.GetByEmail(c.Request.Context(), email)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, profile)
	case errors.Is(err, authdomain.ErrCredentialNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": h.credentialMissingMsg()})
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
	default:
		slog.Error("profile get failed", "error", err, "email", email, "role", h.role)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during get"})
	}
}

// GetOwn handles GET /api/{role}/my-profile, resolving the caller's email
// from the query string.
func (h *ProfileHandler) GetOwn(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = c.GetHeader("user-email")
	}
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User email is required"})
		return
	}

	profile, err := h.profiles.GetByEmail(c.Request.Context(), email)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, profile)
	case errors.Is(err, authdomain.ErrCredentialNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": h.credentialMissingMsg()})
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found. Please create your profile first."})
	default:
		slog.Error("own profile get failed", "error", err, "email", email, "role", h.role)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during get"})
	}
}

// Update handles PUT /api/{role}/update-by-email/:email.
// Identity fields in the body are stripped before the merge.
func (h *ProfileHandler) Update(c *gin.Context) {
	email := c.Param("email")

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		slog.Warn("profile update validation failed", "role", h.role, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid update payload"})
		return
	}

	updated, err := h.profiles.UpdateByEmail(c.Request.Context(), email, patch)
	switch {
	case err == nil:
		slog.Info("profile updated", "email", email, "role", h.role)
		c.JSON(http.StatusOK, updated)
	case errors.Is(err, authdomain.ErrCredentialNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": h.credentialMissingMsg()})
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Profile not found"})
	case errors.Is(err, domain.ErrInvalidPatch):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid update payload"})
	default:
		slog.Error("profile update failed", "error", err, "email", email, "role", h.role)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during update"})
	}
}
