package handlers

import (
	"fyyur-backend/internal/services"
	"fyyur-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	service services.GenreService
	logger  *logrus.Logger
}

func NewGenreHandler(service services.GenreService, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		logger:  logger,
	}
}

// ListGenres godoc
// @Summary List genres
// @Description Get every genre row ordered by name; duplicates from concurrent find-or-create calls are returned as they are stored
// @Tags genres
// @Produce json
// @Success 200 {object} utils.StandardResponse "Genres"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /genres [get]
func (h *GenreHandler) ListGenres(c *fiber.Ctx) error {
	genres, err := h.service.ListGenres(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list genres")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve genres")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}
