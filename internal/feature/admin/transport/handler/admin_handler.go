// Package handler provides the HTTP handlers for the admin surface.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"campuschain_backend/internal/feature/admin/usecase"
	profileentity "campuschain_backend/internal/feature/profile/domain/entity"
	jwtmw "campuschain_backend/internal/platform/jwt"
)

// AdminUsecase defines the aggregate operations the handler depends on.
type AdminUsecase interface {
	GetOverview(ctx context.Context) (*usecase.Overview, error)
	AllUsers(ctx context.Context) ([]profileentity.Profile, []profileentity.Profile, error)
}

// AdminHandler serves the admin-gated dashboard and user listing routes.
type AdminHandler struct {
	admin AdminUsecase
}

// NewAdminHandler creates a new AdminHandler with the injected usecase.
func NewAdminHandler(admin AdminUsecase) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	overview, err := h.admin.GetOverview(c.Request.Context())
	if err != nil {
		slog.Error("admin overview failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Welcome, admin!",
		"admin":    gin.H{"email": c.GetString(jwtmw.ContextEmail), "role": c.GetString(jwtmw.ContextRole)},
		"overview": overview,
	})
}

// AllUsers handles GET /api/admin/all-users.
func (h *AdminHandler) AllUsers(c *gin.Context) {
	students, alumni, err := h.admin.AllUsers(c.Request.Context())
	if err != nil {
		slog.Error("admin user listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students, "alumni": alumni})
}
