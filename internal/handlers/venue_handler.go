package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyyur-backend/internal/repository"
	"fyyur-backend/internal/services"
	"fyyur-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VenueHandler struct {
	service services.VenueService
	logger  *logrus.Logger
}

func NewVenueHandler(service services.VenueService, logger *logrus.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		logger:  logger,
	}
}

// ListVenues godoc
// @Summary List venues grouped by city and state
// @Description Get all venues grouped by unique (city, state) pairs sorted by state then city, each with its upcoming show count
// @Tags venues
// @Produce json
// @Success 200 {object} utils.StandardResponse "Venue areas"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /venues [get]
func (h *VenueHandler) ListVenues(c *fiber.Ctx) error {
	areas, err := h.service.ListVenues(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list venues")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve venues")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venues retrieved successfully", areas)
}

// SearchVenues godoc
// @Summary Search venues by name
// @Description Case-insensitive substring match on venue name; an empty term matches every venue
// @Tags venues
// @Accept x-www-form-urlencoded
// @Produce json
// @Param search_term formData string false "Substring to match"
// @Success 200 {object} utils.StandardResponse "Count and matches"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /venues/search [post]
func (h *VenueHandler) SearchVenues(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.FormValue("search_term"))

	results, err := h.service.SearchVenues(c.Context(), term)
	if err != nil {
		h.logger.WithError(err).WithField("term", term).Error("Failed to search venues")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search venues")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Search completed", fiber.Map{
		"results":     results,
		"search_term": term,
	})
}

// ShowVenue godoc
// @Summary Get venue detail
// @Description Get one venue with its genres and its shows split into past and upcoming
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse "Venue detail"
// @Failure 400 {object} utils.StandardResponse "Invalid venue ID"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Router /venues/{id} [get]
func (h *VenueHandler) ShowVenue(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	venue, err := h.service.GetVenue(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Venue not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get venue")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve venue")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venue retrieved successfully", venue)
}

// CreateVenueForm godoc
// @Summary Get the blank venue form
// @Description Get the empty venue form structure with state and genre choices
// @Tags venues
// @Produce json
// @Success 200 {object} utils.StandardResponse "Blank form"
// @Router /venues/create [get]
func (h *VenueHandler) CreateVenueForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Venue form", fiber.Map{
		"form":    VenueForm{Genres: []string{}},
		"choices": newFormChoices(),
	})
}

// CreateVenueSubmission godoc
// @Summary Create a venue
// @Description Validate the submitted form, find-or-create its genres and persist everything in one unit of work
// @Tags venues
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Venue name"
// @Param city formData string true "City"
// @Param state formData string true "State"
// @Param address formData string true "Address"
// @Param genres formData []string false "Genre names" collectionFormat(multi)
// @Success 201 {object} utils.StandardResponse "Venue listed"
// @Failure 400 {object} utils.StandardResponse "Validation failure with field errors"
// @Failure 500 {object} utils.StandardResponse "Persistence failure"
// @Router /venues/create [post]
func (h *VenueHandler) CreateVenueSubmission(c *fiber.Ctx) error {
	var form VenueForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form data")
	}

	if fieldErrors := validateForm(&form); fieldErrors != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
			"errors": fieldErrors,
			"url":    "/venues/create",
		})
	}

	venue := form.ToModel()
	if err := h.service.CreateVenue(c.Context(), venue, form.Genres); err != nil {
		h.logger.WithError(err).WithField("name", form.Name).Error("Failed to create venue")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError,
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
	}

	return utils.SuccessResponse(c, fiber.StatusCreated,
		fmt.Sprintf("Venue %s was successfully listed!", form.Name), fiber.Map{
			"id":  venue.ID,
			"url": "/",
		})
}

// EditVenueForm godoc
// @Summary Get the venue edit form
// @Description Get a minimal venue summary plus the form pre-populated with current field values (genres are not pre-populated)
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse "Pre-populated form"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Router /venues/{id}/edit [get]
func (h *VenueHandler) EditVenueForm(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	venue, err := h.service.GetVenueRecord(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Venue not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to load venue for edit")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve venue")
	}

	form := VenueForm{
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		Genres:             []string{},
		ImageLink:          venue.ImageLink,
		FacebookLink:       venue.FacebookLink,
		WebsiteLink:        venue.WebsiteLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Venue edit form", fiber.Map{
		"venue":   fiber.Map{"id": venue.ID, "name": venue.Name},
		"form":    form,
		"choices": newFormChoices(),
	})
}

// EditVenueSubmission godoc
// @Summary Update a venue
// @Description Overwrite every mutable field and rebuild the genre association set from the submitted names; last writer wins
// @Tags venues
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse "Venue updated"
// @Failure 400 {object} utils.StandardResponse "Validation failure with field errors"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Failure 500 {object} utils.StandardResponse "Persistence failure"
// @Router /venues/{id}/edit [post]
func (h *VenueHandler) EditVenueSubmission(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	var form VenueForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form data")
	}

	if fieldErrors := validateForm(&form); fieldErrors != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
			"errors": fieldErrors,
			"url":    fmt.Sprintf("/venues/%d/edit", id),
		})
	}

	if err := h.service.UpdateVenue(c.Context(), uint(id), form.ToModel(), form.Genres); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Venue not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to update venue")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An error has occured and update failed")
	}

	return utils.SuccessResponse(c, fiber.StatusOK,
		fmt.Sprintf("The Venue %s has been successfully updated!", form.Name), fiber.Map{
			"id":  id,
			"url": fmt.Sprintf("/venues/%d", id),
		})
}

// DeleteVenue godoc
// @Summary Delete a venue
// @Description Delete the venue and every show referencing it in one unit of work; responds with the listing page URL for client-side navigation
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} map[string]interface{} "deleted flag and listing URL"
// @Failure 404 {object} utils.StandardResponse "Venue not found"
// @Failure 500 {object} utils.StandardResponse "Persistence failure"
// @Router /venues/{id} [delete]
func (h *VenueHandler) DeleteVenue(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid venue ID")
	}

	venue, err := h.service.DeleteVenue(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Venue not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete venue")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An error occurred. Venue could not be deleted.")
	}

	h.logger.WithField("name", venue.Name).Info("Venue was deleted")
	return c.JSON(fiber.Map{
		"deleted": true,
		"url":     "/venues",
	})
}
