package server

import (
	"errors"

	"cardify/internal/models"
	"cardify/internal/service"

	"github.com/gofiber/fiber/v2"
)

var errAssistNotConfigured = errors.New("message assist is not configured")

// AssistMessage handles POST /api/cards/ai
func (s *Server) AssistMessage(c *fiber.Ctx) error {
	var in service.AssistInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if !s.assistService.Enabled() {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(errAssistNotConfigured))
	}

	suggestion, err := s.assistService.Suggest(c.Context(), in)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"message": suggestion})
}
