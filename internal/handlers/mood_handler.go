package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/moodtrack/moodtrack-backend/internal/dto"
	"github.com/moodtrack/moodtrack-backend/internal/middleware"
	"github.com/moodtrack/moodtrack-backend/internal/models"
	"github.com/moodtrack/moodtrack-backend/internal/services"
)

// MoodHandler serves the mood intake and statistics views.
type MoodHandler struct {
	service *services.MoodService
}

func NewMoodHandler(service *services.MoodService) *MoodHandler {
	return &MoodHandler{service: service}
}

// TrackMoodForm handles GET /track-mood/ — renders the empty intake form,
// no side effect.
func (h *MoodHandler) TrackMoodForm(c *fiber.Ctx) error {
	return c.JSON(dto.TrackMoodFormResponse{Moods: models.AllMoods})
}

// TrackMood handles POST /track-mood/ — appends one entry for the
// requester and redirects to the statistics view. Out-of-enum labels are
// rejected by the store, not re-validated here.
func (h *MoodHandler) TrackMood(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.TrackMoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if _, err := h.service.TrackMood(userID, req.Mood, req.MoodNote); err != nil {
		if errors.Is(err, models.ErrInvalidMood) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save mood entry",
		})
	}

	return c.Redirect("/mood-statistics/", fiber.StatusSeeOther)
}

// Statistics handles GET /mood-statistics/ — the read-only aggregate view.
func (h *MoodHandler) Statistics(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	stats, err := h.service.GetStatistics(userID, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute statistics",
		})
	}

	return c.JSON(stats)
}
