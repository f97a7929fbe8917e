package handlers

import (
	"fyyur-backend/internal/models"
	"fyyur-backend/internal/services"
	"fyyur-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ShowHandler struct {
	service services.ShowService
	logger  *logrus.Logger
}

func NewShowHandler(service services.ShowService, logger *logrus.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		logger:  logger,
	}
}

// ListShows godoc
// @Summary List shows
// @Description Get all shows ordered by start time descending
// @Tags shows
// @Produce json
// @Success 200 {object} utils.StandardResponse "Shows"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /shows [get]
func (h *ShowHandler) ListShows(c *fiber.Ctx) error {
	shows, err := h.service.ListShows(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list shows")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve shows")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Shows retrieved successfully", shows)
}

// CreateShowForm godoc
// @Summary Get the blank show form
// @Description Get the empty show form structure
// @Tags shows
// @Produce json
// @Success 200 {object} utils.StandardResponse "Blank form"
// @Router /shows/create [get]
func (h *ShowHandler) CreateShowForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Show form", fiber.Map{
		"form": ShowForm{},
	})
}

// CreateShowSubmission godoc
// @Summary Create a show
// @Description Persist a show linking an artist to a venue; the referenced ids are not pre-checked, rejecting orphans is left to database constraints
// @Tags shows
// @Accept x-www-form-urlencoded
// @Produce json
// @Param artist_id formData int true "Artist ID"
// @Param venue_id formData int true "Venue ID"
// @Param start_time formData string false "Start time (RFC3339 or YYYY-MM-DD HH:MM:SS); defaults to now"
// @Success 201 {object} utils.StandardResponse "Show listed"
// @Failure 400 {object} utils.StandardResponse "Validation failure with field errors"
// @Failure 500 {object} utils.StandardResponse "Persistence failure"
// @Router /shows/create [post]
func (h *ShowHandler) CreateShowSubmission(c *fiber.Ctx) error {
	var form ShowForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form data")
	}

	if fieldErrors := validateForm(&form); fieldErrors != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
			"errors": fieldErrors,
			"url":    "/shows/create",
		})
	}

	startTime, err := form.StartTimeValue()
	if err != nil {
		// the original surfaces a bad timestamp as a generic failure
		h.logger.WithError(err).Error("Failed to parse show start time")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An error occurred. Show could not be listed.")
	}

	show := &models.Show{
		ArtistID:  form.ArtistID,
		VenueID:   form.VenueID,
		StartTime: startTime,
	}
	if err := h.service.CreateShow(c.Context(), show); err != nil {
		h.logger.WithError(err).Error("Failed to create show")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An error occurred. Show could not be listed.")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Show was successfully listed!", fiber.Map{
		"id":  show.ID,
		"url": "/shows",
	})
}
