// Package handler provides the HTTP handlers for the identity consistency endpoints.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "campuschain_backend/internal/feature/auth/domain"
	authentity "campuschain_backend/internal/feature/auth/domain/entity"
	profileentity "campuschain_backend/internal/feature/profile/domain/entity"
	"campuschain_backend/internal/feature/sync/transport/http/dto"
	"campuschain_backend/internal/feature/sync/usecase"
)

// SyncUsecase defines the consistency operations the handler depends on.
type SyncUsecase interface {
	SyncProfile(ctx context.Context, email string, role authentity.Role) usecase.SyncResult
	GetOrCreateProfile(ctx context.Context, email string, role authentity.Role) (*profileentity.Profile, bool, error)
	ValidateConsistency(ctx context.Context, email string) usecase.ConsistencyReport
}

// SyncHandler exposes the consistency service on the student routes.
type SyncHandler struct {
	sync SyncUsecase
}

// NewSyncHandler creates a SyncHandler with the injected usecase.
func NewSyncHandler(sync SyncUsecase) *SyncHandler {
	return &SyncHandler{sync: sync}
}

// SyncProfile handles POST /api/student/sync-profile.
// - 404 when no student credential exists for the email
// - 400 when the sync itself fails
// - 200 with {message, profile, code} otherwise
func (h *SyncHandler) SyncProfile(c *gin.Context) {
	var req dto.SyncReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email is required"})
		return
	}

	result := h.sync.SyncProfile(c.Request.Context(), req.Email, authentity.RoleStudent)
	switch {
	case result.Success:
		slog.Info("profile sync", "email", req.Email, "code", result.Code)
		c.JSON(http.StatusOK, gin.H{
			"message": result.Message,
			"profile": result.Profile,
			"code":    result.Code,
		})
	case result.Code == usecase.CodeUserNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found in login database or not a student"})
	default:
		slog.Error("profile sync failed", "email", req.Email, "error", result.Err)
		body := gin.H{"message": result.Message}
		if result.Err != nil {
			body["error"] = result.Err.Error()
		}
		c.JSON(http.StatusBadRequest, body)
	}
}

// GetOrCreate handles GET /api/student/get-or-create/:email.
func (h *SyncHandler) GetOrCreate(c *gin.Context) {
	email := c.Param("email")

	profile, created, err := h.sync.GetOrCreateProfile(c.Request.Context(), email, authentity.RoleStudent)
	switch {
	case err == nil:
		message := "Profile retrieved successfully"
		if created {
			message = "Profile created successfully"
		}
		c.JSON(http.StatusOK, gin.H{
			"profile": profile,
			"created": created,
			"message": message,
		})
	case errors.Is(err, authdomain.ErrCredentialNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found in login database or not a student"})
	default:
		slog.Error("get-or-create failed", "email", email, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error getting or creating profile", "error": err.Error()})
	}
}

// ValidateEmail handles GET /api/student/validate-email/:email.
// Always 200: the report itself carries the outcome.
func (h *SyncHandler) ValidateEmail(c *gin.Context) {
	report := h.sync.ValidateConsistency(c.Request.Context(), c.Param("email"))
	c.JSON(http.StatusOK, report)
}
