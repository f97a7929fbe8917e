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

type ArtistHandler struct {
	service services.ArtistService
	logger  *logrus.Logger
}

func NewArtistHandler(service services.ArtistService, logger *logrus.Logger) *ArtistHandler {
	return &ArtistHandler{
		service: service,
		logger:  logger,
	}
}

// ListArtists godoc
// @Summary List artists
// @Description Get all artists ordered by name
// @Tags artists
// @Produce json
// @Success 200 {object} utils.StandardResponse "Artist summaries"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists [get]
func (h *ArtistHandler) ListArtists(c *fiber.Ctx) error {
	artists, err := h.service.ListArtists(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list artists")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve artists")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artists retrieved successfully", artists)
}

// SearchArtists godoc
// @Summary Search artists by name
// @Description Case-insensitive substring match on artist name; an empty term matches every artist
// @Tags artists
// @Accept x-www-form-urlencoded
// @Produce json
// @Param search_term formData string false "Substring to match"
// @Success 200 {object} utils.StandardResponse "Count and matches"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /artists/search [post]
func (h *ArtistHandler) SearchArtists(c *fiber.Ctx) error {
	term := strings.TrimSpace(c.FormValue("search_term"))

	results, err := h.service.SearchArtists(c.Context(), term)
	if err != nil {
		h.logger.WithError(err).WithField("term", term).Error("Failed to search artists")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to search artists")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Search completed", fiber.Map{
		"results":     results,
		"search_term": term,
	})
}

// ShowArtist godoc
// @Summary Get artist detail
// @Description Get one artist with genres and shows split into past and upcoming
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse "Artist detail"
// @Failure 400 {object} utils.StandardResponse "Invalid artist ID"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Router /artists/{id} [get]
func (h *ArtistHandler) ShowArtist(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	artist, err := h.service.GetArtist(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Artist not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get artist")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve artist")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artist retrieved successfully", artist)
}

// CreateArtistForm godoc
// @Summary Get the blank artist form
// @Description Get the empty artist form structure with state and genre choices
// @Tags artists
// @Produce json
// @Success 200 {object} utils.StandardResponse "Blank form"
// @Router /artists/create [get]
func (h *ArtistHandler) CreateArtistForm(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Artist form", fiber.Map{
		"form":    ArtistForm{Genres: []string{}},
		"choices": newFormChoices(),
	})
}

// CreateArtistSubmission godoc
// @Summary Create an artist
// @Description Validate the submitted form, find-or-create its genres and persist everything in one unit of work
// @Tags artists
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Artist name"
// @Param city formData string true "City"
// @Param state formData string true "State"
// @Param genres formData []string false "Genre names" collectionFormat(multi)
// @Success 201 {object} utils.StandardResponse "Artist listed"
// @Failure 400 {object} utils.StandardResponse "Validation failure with field errors"
// @Failure 500 {object} utils.StandardResponse "Persistence failure"
// @Router /artists/create [post]
func (h *ArtistHandler) CreateArtistSubmission(c *fiber.Ctx) error {
	var form ArtistForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form data")
	}

	if fieldErrors := validateForm(&form); fieldErrors != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
			"errors": fieldErrors,
			"url":    "/artists/create",
		})
	}

	artist := form.ToModel()
	if err := h.service.CreateArtist(c.Context(), artist, form.Genres); err != nil {
		h.logger.WithError(err).WithField("name", form.Name).Error("Failed to create artist")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError,
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
	}

	return utils.SuccessResponse(c, fiber.StatusCreated,
		fmt.Sprintf("Artist %s was successfully listed!", form.Name), fiber.Map{
			"id":  artist.ID,
			"url": "/",
		})
}

// EditArtistForm godoc
// @Summary Get the artist edit form
// @Description Get a minimal artist summary plus the form pre-populated with current field values (genres are not pre-populated)
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse "Pre-populated form"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Router /artists/{id}/edit [get]
func (h *ArtistHandler) EditArtistForm(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	artist, err := h.service.GetArtistRecord(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Artist not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to load artist for edit")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve artist")
	}

	form := ArtistForm{
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Genres:             []string{},
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		WebsiteLink:        artist.WebsiteLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Artist edit form", fiber.Map{
		"artist":  fiber.Map{"id": artist.ID, "name": artist.Name},
		"form":    form,
		"choices": newFormChoices(),
	})
}

// EditArtistSubmission godoc
// @Summary Update an artist
// @Description Overwrite every mutable field and rebuild the genre association set from the submitted names; last writer wins
// @Tags artists
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse "Artist updated"
// @Failure 400 {object} utils.StandardResponse "Validation failure with field errors"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Failure 500 {object} utils.StandardResponse "Persistence failure"
// @Router /artists/{id}/edit [post]
func (h *ArtistHandler) EditArtistSubmission(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	var form ArtistForm
	if err := c.BodyParser(&form); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form data")
	}

	if fieldErrors := validateForm(&form); fieldErrors != nil {
		return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", fiber.Map{
			"errors": fieldErrors,
			"url":    fmt.Sprintf("/artists/%d/edit", id),
		})
	}

	if err := h.service.UpdateArtist(c.Context(), uint(id), form.ToModel(), form.Genres); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Artist not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to update artist")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An error has occured and update failed")
	}

	return utils.SuccessResponse(c, fiber.StatusOK,
		fmt.Sprintf("The Artist %s has been successfully updated!", form.Name), fiber.Map{
			"id":  id,
			"url": fmt.Sprintf("/artists/%d", id),
		})
}

// DeleteArtist godoc
// @Summary Delete an artist
// @Description Delete the artist and every show referencing it in one unit of work; responds with the listing page URL for client-side navigation
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} map[string]interface{} "deleted flag and listing URL"
// @Failure 404 {object} utils.StandardResponse "Artist not found"
// @Failure 500 {object} utils.StandardResponse "Persistence failure"
// @Router /artists/{id} [delete]
func (h *ArtistHandler) DeleteArtist(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid artist ID")
	}

	artist, err := h.service.DeleteArtist(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Artist not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete artist")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "An error occurred. Artist could not be deleted.")
	}

	h.logger.WithField("name", artist.Name).Info("Artist was deleted")
	return c.JSON(fiber.Map{
		"deleted": true,
		"url":     "/artists",
	})
}
