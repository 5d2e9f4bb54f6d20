// Package handler provides the HTTP handlers for the event feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"campuschain_backend/internal/feature/event/domain/entity"
	"campuschain_backend/internal/feature/event/transport/http/dto"
	jwtmw "campuschain_backend/internal/platform/jwt"
)

// EventUsecase defines the event operations the handler depends on.
type EventUsecase interface {
	Create(ctx context.Context, e *entity.Event, createdBy string) (*entity.Event, error)
	List(ctx context.Context) ([]entity.Event, error)
}

// EventHandler handles HTTP requests for events.
type EventHandler struct {
	events EventUsecase
}

// NewEventHandler creates a new EventHandler with the injected usecase.
func NewEventHandler(events EventUsecase) *EventHandler {
	return &EventHandler{events: events}
}

// Create handles POST /api/events (admin only). The creator is taken from
// the authenticated token, never from the body.
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.EventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("event create validation failed", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and date are required"})
		return
	}

	event := &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
	}
	created, err := h.events.Create(c.Request.Context(), event, c.GetString(jwtmw.ContextEmail))
	if err != nil {
		slog.Error("event create failed", "error", err, "title", req.Title)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	slog.Info("event created", "title", created.Title, "by", created.CreatedBy)
	c.JSON(http.StatusCreated, created)
}

// List handles GET /api/events (public).
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.events.List(c.Request.Context())
	if err != nil {
		slog.Error("event list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, events)
}
