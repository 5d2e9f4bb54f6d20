// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"campuschain_backend/internal/feature/auth/domain"
	"campuschain_backend/internal/feature/auth/domain/entity"
	"campuschain_backend/internal/feature/auth/transport/http/dto"
	profiledomain "campuschain_backend/internal/feature/profile/domain"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Register(ctx context.Context, name, email, password string, role entity.Role) error
	Login(ctx context.Context, email, password string, role entity.Role) (string, *entity.PublicUser, error)
	AdminLogin(ctx context.Context, email, password string) (string, *entity.PublicUser, error)
}

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler with the injected usecase.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register.
// - 400 when a required field is missing or the role is unknown
// - 409 when the email is already registered, or when the starter profile
//   collides in the role store (credential stays committed; sync repairs)
// - 201 on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}
	role, ok := entity.ParseRole(req.Role)
	if !ok {
		slog.Warn("register with unknown role", "role", req.Role, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, role)
	switch {
	case err == nil:
		slog.Info("user registered", "email", req.Email, "role", role)
		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"message": "Email already exists"})
	case errors.Is(err, profiledomain.ErrProfileAlreadyExists):
		// Partial commit: credential created, profile slot already taken.
		slog.Warn("starter profile conflict", "email", req.Email, "role", role)
		c.JSON(http.StatusConflict, gin.H{"message": "A profile with this email already exists in the role-specific database."})
	default:
		slog.Error("registration failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during registration"})
	}
}

// Login handles POST /api/auth/login.
// Bad credentials of any kind return the same 401 body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email, password, and role are required"})
		return
	}
	role, ok := entity.ParseRole(req.Role)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, role)
	if err != nil {
		slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	slog.Info("user login successful", "email", req.Email, "role", user.Role)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// AdminLogin handles POST /api/admin/login. Only stored admin credentials
// pass; the endpoint never elevates a student or alumni account.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("admin login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	token, user, err := h.auth.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("admin login failed", "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials or not an admin"})
		return
	}
	slog.Info("admin login successful", "email", req.Email)
	c.JSON(http.StatusOK, gin.H{
		"message": "Admin login successful",
		"token":   token,
		"user":    user,
	})
}
